// Package emulator handles the complete run of a ROM file: loading, machine
// setup, frontend creation and the frame loop.
package emulator

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM file of the options and runs it until the context is
// cancelled, the user quits, the frame limit is reached or the program fails.
// The headless frontend writes its last frame to output.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	rom, err := loader.New(logger).Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	PrintInfo(logger, opts, rom)

	rnd, err := random.New(opts.Seed)
	if err != nil {
		return fmt.Errorf("creating random source: %w", err)
	}

	machine, err := interpreter.New(logger, rom, rnd, interpreter.Options{
		Trace: opts.Debug,
	})
	if err != nil {
		return fmt.Errorf("creating interpreter: %w", err)
	}

	frontend, err := config.CreateFrontend(logger, opts, output)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}
	defer func() {
		if err := frontend.Close(); err != nil {
			logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	runner := host.New(logger, machine, frontend, config.RunnerConfig(opts))
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("running %s: %w", opts.Input, err)
	}

	logger.Info("Emulation finished", log.Int("frames", runner.Frames()))
	return nil
}

// PrintInfo prints the information about the loaded ROM.
func PrintInfo(logger *log.Logger, opts options.Program, rom *memory.Rom) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", rom.Len()),
		log.String("frontend", opts.Frontend),
	)
	if opts.Frontend != options.FrontendHeadless {
		logger.Info("Keypad", log.String("keys", keymap.Help()))
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
