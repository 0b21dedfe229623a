// Package headless provides a frontend without any window or terminal output.
// It keeps the last rendered frame and can write it as text when closed,
// which is useful for automated runs with a frame limit.
package headless

import (
	"fmt"
	"io"
	"iter"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrogolib/log"
)

var _ host.Frontend = (*Frontend)(nil)

// Frontend is a frontend that renders into memory.
type Frontend struct {
	logger *log.Logger
	output io.Writer // optional destination of the final frame

	frames     int
	soundTicks int
	screen     string
}

// New returns a new headless frontend. If output is not nil, the last
// rendered frame is written to it on Close.
func New(logger *log.Logger, output io.Writer) *Frontend {
	return &Frontend{
		logger: logger,
		output: output,
	}
}

// Render stores the frame as text.
func (f *Frontend) Render(pixels iter.Seq[display.Pixel], soundActive bool) error {
	f.screen = display.Text(pixels)
	f.frames++
	if soundActive {
		f.soundTicks++
	}
	return nil
}

// Poll never returns key events.
func (f *Frontend) Poll() ([]host.KeyEvent, bool) {
	return nil, false
}

// Screen returns the last rendered frame, '#' for lit and '.' for dark pixels.
func (f *Frontend) Screen() string {
	return f.screen
}

// Frames returns the number of rendered frames.
func (f *Frontend) Frames() int {
	return f.frames
}

// Close writes the last frame to the output.
func (f *Frontend) Close() error {
	f.logger.Debug("Headless run finished",
		log.Int("frames", f.frames),
		log.Int("sound_frames", f.soundTicks))

	if f.output == nil {
		return nil
	}
	if _, err := io.WriteString(f.output, f.screen); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}
