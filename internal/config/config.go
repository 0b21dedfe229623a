// Package config handles application configuration and setup
package config

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateFrontend creates the frontend selected by the options. The headless
// frontend writes its last frame to output unless running quietly.
func CreateFrontend(logger *log.Logger, opts options.Program, output io.Writer) (host.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendSDL:
		f, err := sdl.New(logger, opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("creating sdl frontend: %w", err)
		}
		return f, nil

	case options.FrontendTerminal:
		f, err := terminal.New(logger, opts.KeyHold)
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		return f, nil

	case options.FrontendHeadless:
		if opts.Quiet {
			output = nil
		}
		return headless.New(logger, output), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

// RunnerConfig returns the frame loop configuration for the options.
func RunnerConfig(opts options.Program) host.Config {
	return host.Config{
		CyclesPerFrame: opts.CyclesPerFrame,
		FrameRate:      opts.FrameRate,
		MaxFrames:      opts.MaxFrames,
	}
}
