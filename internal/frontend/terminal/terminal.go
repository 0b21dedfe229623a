// Package terminal provides a frontend that renders into a text terminal using termbox.
//
// Two pixel rows are drawn per character cell using the upper half block
// glyph, so the framebuffer needs 64x17 cells including the status line.
package terminal

import (
	"fmt"
	"iter"
	"sync"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
)

const (
	halfBlock = '▀'

	colorOn  = termbox.ColorYellow
	colorOff = termbox.ColorBlack
)

var _ host.Frontend = (*Frontend)(nil)

// Frontend is a termbox based terminal frontend.
type Frontend struct {
	logger *log.Logger

	events   chan termbox.Event
	wg       sync.WaitGroup
	releaser *releaser

	row [display.Columns]display.Pixel // pixel row above the current one
}

// New initializes the terminal. keyHold is the number of frames after which
// a key that is not pressed again counts as released.
func New(logger *log.Logger, keyHold int) (*Frontend, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()

	f := &Frontend{
		logger:   logger,
		events:   make(chan termbox.Event, 64),
		releaser: newReleaser(keyHold),
	}

	// termbox only offers a blocking event poll
	f.wg.Add(1)
	go f.pollLoop()

	return f, nil
}

func (f *Frontend) pollLoop() {
	defer f.wg.Done()
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case f.events <- ev:
		default: // input is dropped while the emulation is stalled
		}
	}
}

// Render draws the frame into the terminal back buffer and flushes it.
func (f *Frontend) Render(pixels iter.Seq[display.Pixel], soundActive bool) error {
	i := 0
	for p := range pixels {
		x := i % display.Columns
		y := i / display.Columns
		i++

		if y%2 == 0 {
			f.row[x] = p
			continue
		}
		termbox.SetCell(x, y/2, halfBlock, pixelColor(f.row[x]), pixelColor(p))
	}

	status := "        "
	if soundActive {
		status = "[sound] "
	}
	for x, r := range status {
		termbox.SetCell(x, display.Rows/2, r, termbox.ColorDefault, termbox.ColorDefault)
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

func pixelColor(p display.Pixel) termbox.Attribute {
	if p.IsOn() {
		return colorOn
	}
	return colorOff
}

// Poll returns the key events received since the last call. Escape and
// Ctrl+C request to quit.
func (f *Frontend) Poll() ([]host.KeyEvent, bool) {
	events := f.releaser.frame()

	for {
		select {
		case ev := <-f.events:
			if ev.Type == termbox.EventError {
				f.logger.Error("Terminal event error", log.Err(ev.Err))
				return events, true
			}
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				return events, true
			}
			if code, ok := keymap.Lookup(ev.Ch); ok {
				events = append(events, f.releaser.press(code)...)
			}

		default:
			return events, false
		}
	}
}

// Close restores the terminal.
func (f *Frontend) Close() error {
	termbox.Interrupt()
	f.wg.Wait()
	termbox.Close()
	return nil
}
