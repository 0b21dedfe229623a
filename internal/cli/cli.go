// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line flags of the process and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	switch {
	case opts.CyclesPerFrame < 1:
		return fmt.Errorf("cycles per frame must be at least 1, got %d", opts.CyclesPerFrame)
	case opts.FrameRate < 0:
		return fmt.Errorf("frame rate must not be negative, got %d", opts.FrameRate)
	case opts.Scale < 1:
		return fmt.Errorf("scale must be at least 1, got %d", opts.Scale)
	case opts.MaxFrames < 0:
		return fmt.Errorf("frame limit must not be negative, got %d", opts.MaxFrames)
	case opts.KeyHold < 1:
		return fmt.Errorf("key hold must be at least 1 frame, got %d", opts.KeyHold)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendSDL, "frontend to use ("+strings.Join(options.Frontends, "/")+")")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", host.DefaultCyclesPerFrame, "number of instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", host.DefaultFrameRate, "frames per second, 0 runs as fast as possible")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per framebuffer pixel for the sdl frontend")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a random seed")
	flags.IntVar(&opts.MaxFrames, "frames", 0, "stop after the given number of frames, 0 runs until quit")
	flags.IntVar(&opts.KeyHold, "keyhold", 6, "frames after which a key counts as released in the terminal frontend")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
