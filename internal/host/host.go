// Package host implements the frame loop that drives the interpreter.
//
// Every frame the runner executes a fixed number of instructions, stopping
// early if the machine waits for a key, decrements the timers once, hands the
// framebuffer to the frontend and forwards the frontend's key events.
package host

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultCyclesPerFrame is the default number of instructions executed per frame.
	DefaultCyclesPerFrame = 100
	// DefaultFrameRate is the default number of frames per second.
	DefaultFrameRate = 60
)

// KeyEvent is a keypad key press or release.
type KeyEvent struct {
	Key     byte
	Pressed bool
}

// Machine is the virtual machine driven by the runner.
type Machine interface {
	Tick() error
	Waiting() bool
	OnFrameTick()
	Pixels() iter.Seq[display.Pixel]
	SoundActive() bool
	KeyDown(key byte)
	KeyUp(key byte)
}

// Frontend presents the framebuffer and collects keyboard input.
type Frontend interface {
	// Render presents the framebuffer of the finished frame.
	Render(pixels iter.Seq[display.Pixel], soundActive bool) error
	// Poll returns the key events since the last call and whether the user
	// requested to quit.
	Poll() ([]KeyEvent, bool)
	// Close releases all frontend resources.
	Close() error
}

// Config controls the pacing of the runner.
type Config struct {
	CyclesPerFrame int
	FrameRate      int // frames per second, 0 runs unpaced
	MaxFrames      int // 0 runs until stopped
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		CyclesPerFrame: DefaultCyclesPerFrame,
		FrameRate:      DefaultFrameRate,
	}
}

// Runner drives a machine and a frontend.
type Runner struct {
	logger   *log.Logger
	machine  Machine
	frontend Frontend
	cfg      Config

	frames int
}

// New returns a new runner.
func New(logger *log.Logger, machine Machine, frontend Frontend, cfg Config) *Runner {
	return &Runner{
		logger:   logger,
		machine:  machine,
		frontend: frontend,
		cfg:      cfg,
	}
}

// Run executes frames until the context is cancelled, the frontend requests
// to quit, the frame limit is reached or the machine fails.
func (r *Runner) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if r.cfg.FrameRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.cfg.FrameRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := r.Frame()
		if err != nil {
			return err
		}
		if quit {
			r.logger.Debug("Quit requested", log.Int("frames", r.frames))
			return nil
		}
		if r.cfg.MaxFrames > 0 && r.frames >= r.cfg.MaxFrames {
			r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
			return nil
		}

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}

// Frame executes a single frame and returns whether the frontend requested to quit.
func (r *Runner) Frame() (bool, error) {
	for range r.cfg.CyclesPerFrame {
		if r.machine.Waiting() {
			break
		}
		if err := r.machine.Tick(); err != nil {
			return false, fmt.Errorf("running frame %d: %w", r.frames, err)
		}
	}

	r.machine.OnFrameTick()
	r.frames++

	if err := r.frontend.Render(r.machine.Pixels(), r.machine.SoundActive()); err != nil {
		return false, fmt.Errorf("rendering frame %d: %w", r.frames, err)
	}

	events, quit := r.frontend.Poll()
	for _, ev := range events {
		if ev.Pressed {
			r.machine.KeyDown(ev.Key)
		} else {
			r.machine.KeyUp(ev.Key)
		}
	}
	return quit, nil
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() int {
	return r.frames
}
