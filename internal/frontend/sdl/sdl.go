// Package sdl provides a windowed frontend using SDL2.
package sdl

import (
	"fmt"
	"iter"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowTitle      = "retrochip8"
	windowTitleSound = "retrochip8 ♪"

	pixelDepth = 4
)

// pixel colors in texture byte order R, G, B, A
var (
	colorOn  = [pixelDepth]byte{0xFF, 0xCC, 0x00, 0xFF}
	colorOff = [pixelDepth]byte{0x99, 0x66, 0x00, 0xFF}
)

var _ host.Frontend = (*Frontend)(nil)

// Frontend is an SDL window showing the scaled framebuffer.
type Frontend struct {
	logger *log.Logger

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is copied to the texture every frame
	pixels []byte

	soundActive bool
}

// New opens a window with every framebuffer pixel scaled to scale x scale screen pixels.
func New(logger *log.Logger, scale int) (*Frontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	f := &Frontend{
		logger: logger,
		pixels: make([]byte, display.Columns*display.Rows*pixelDepth),
	}

	var err error
	f.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(display.Columns*scale), int32(display.Rows*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		f.destroy()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	f.renderer, err = sdl.CreateRenderer(f.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		f.destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// the texture has framebuffer size, the renderer stretches it to the window
	f.texture, err = f.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Columns, display.Rows)
	if err != nil {
		f.destroy()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return f, nil
}

// Render uploads the frame to the texture and presents it.
func (f *Frontend) Render(pixels iter.Seq[display.Pixel], soundActive bool) error {
	i := 0
	for p := range pixels {
		if p.IsOn() {
			copy(f.pixels[i:], colorOn[:])
		} else {
			copy(f.pixels[i:], colorOff[:])
		}
		i += pixelDepth
	}

	if err := f.texture.Update(nil, f.pixels, display.Columns*pixelDepth); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := f.renderer.Copy(f.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	f.renderer.Present()

	if soundActive != f.soundActive {
		f.soundActive = soundActive
		if soundActive {
			f.window.SetTitle(windowTitleSound)
		} else {
			f.window.SetTitle(windowTitle)
		}
	}
	return nil
}

// Poll drains the SDL event queue. Closing the window or pressing Escape
// requests to quit.
func (f *Frontend) Poll() ([]host.KeyEvent, bool) {
	var events []host.KeyEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch sdlEvent := ev.(type) {
		case *sdl.QuitEvent:
			return events, true

		case *sdl.KeyboardEvent:
			if sdlEvent.Repeat != 0 {
				continue
			}
			if sdlEvent.Keysym.Sym == sdl.K_ESCAPE {
				return events, true
			}

			name := []rune(sdl.GetKeyName(sdlEvent.Keysym.Sym))
			if len(name) != 1 {
				continue
			}
			code, ok := keymap.Lookup(name[0])
			if !ok {
				continue
			}

			switch sdlEvent.Type {
			case sdl.KEYDOWN:
				events = append(events, host.KeyEvent{Key: code, Pressed: true})
			case sdl.KEYUP:
				events = append(events, host.KeyEvent{Key: code, Pressed: false})
			}
		}
	}

	return events, false
}

// Close destroys the window and shuts down SDL.
func (f *Frontend) Close() error {
	f.destroy()
	return nil
}

func (f *Frontend) destroy() {
	if f.texture != nil {
		if err := f.texture.Destroy(); err != nil {
			f.logger.Error("Destroying texture failed", log.Err(err))
		}
	}
	if f.renderer != nil {
		if err := f.renderer.Destroy(); err != nil {
			f.logger.Error("Destroying renderer failed", log.Err(err))
		}
	}
	if f.window != nil {
		if err := f.window.Destroy(); err != nil {
			f.logger.Error("Destroying window failed", log.Err(err))
		}
	}
	sdl.Quit()
}
