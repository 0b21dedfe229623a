// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendSDL, FrontendTerminal, FrontendHeadless}

// Parameters contains file path and frontend options.
type Parameters struct {
	Input    string `flag:"i" usage:"input ROM file"`
	Frontend string `flag:"frontend" usage:"frontend: sdl, terminal, headless" default:"sdl"`
}

// Flags contains behavior options.
type Flags struct {
	CyclesPerFrame int    `flag:"cycles" usage:"instructions executed per frame" default:"100"`
	FrameRate      int    `flag:"fps" usage:"frames per second, 0 runs unpaced" default:"60"`
	Scale          int    `flag:"scale" usage:"window pixels per framebuffer pixel" default:"10"`
	Seed           uint64 `flag:"seed" usage:"random generator seed, 0 seeds randomly"`
	MaxFrames      int    `flag:"frames" usage:"stop after the number of frames, 0 runs until quit"`
	KeyHold        int    `flag:"keyhold" usage:"frames until a terminal key counts as released" default:"6"`
	Debug          bool   `flag:"debug" usage:"enable debug logging and instruction tracing"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
