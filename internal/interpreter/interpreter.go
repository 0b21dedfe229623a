// Package interpreter implements the fetch-decode-execute core of the CHIP-8 virtual machine.
//
// The interpreter owns the memory, registers, framebuffer, call stack, timers and
// keypad state. A host drives it by calling Tick a number of times per frame,
// OnFrameTick once per frame and by forwarding key events.
package interpreter

import (
	"fmt"
	"iter"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/log"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// RandomSource provides the random bytes of the RND instruction.
type RandomSource interface {
	Byte() byte
}

// Options controls optional interpreter behavior.
type Options struct {
	// Trace logs every executed instruction at debug level.
	Trace bool
}

// Mode is the run mode of the interpreter.
type Mode int

const (
	// Running executes one instruction per tick.
	Running Mode = iota
	// WaitingForKey suspends execution until a key is released.
	WaitingForKey
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the run state. Target is the register that receives the released
// key and is only meaningful in WaitingForKey mode.
type State struct {
	Mode   Mode
	Target byte
}

// Interpreter is a CHIP-8 virtual machine.
type Interpreter struct {
	logger *log.Logger
	opts   Options

	mem     *memory.Memory
	reg     register.Registers
	display *display.Display
	rnd     RandomSource

	pc    uint16
	index uint16

	stack [StackDepth]uint16
	sp    int

	delayTimer byte
	soundTimer byte

	keys  uint16
	state State

	err error // terminal execution error
}

// New returns a new interpreter with the font table and the program loaded.
func New(logger *log.Logger, rom *memory.Rom, rnd RandomSource, opts Options) (*Interpreter, error) {
	mem := memory.New()
	if err := mem.LoadFont(memory.Font[:]); err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	mem.LoadRom(rom)

	return &Interpreter{
		logger:  logger,
		opts:    opts,
		mem:     mem,
		display: display.New(),
		rnd:     rnd,
		pc:      memory.ProgramStart,
		state:   State{Mode: Running},
	}, nil
}

// OnFrameTick decrements the delay and sound timers. It has to be called once per frame.
func (i *Interpreter) OnFrameTick() {
	if i.delayTimer > 0 {
		i.delayTimer--
	}
	if i.soundTimer > 0 {
		i.soundTimer--
	}
}

// Pixels returns the current framebuffer content in row major order.
func (i *Interpreter) Pixels() iter.Seq[display.Pixel] {
	return i.display.Pixels()
}

// KeyDown marks the key as pressed. It panics if the key is not in [0, KeyCount).
func (i *Interpreter) KeyDown(key byte) {
	checkKey(key)
	i.keys |= 1 << key
}

// KeyUp marks the key as released. If the interpreter is waiting for a key,
// the released key is written to the target register and execution resumes.
// It panics if the key is not in [0, KeyCount).
func (i *Interpreter) KeyUp(key byte) {
	checkKey(key)
	i.keys &^= 1 << key

	if i.state.Mode != WaitingForKey {
		return
	}
	i.reg.Set(i.state.Target, key)
	i.logger.Debug("Key wait resolved",
		log.Uint8("key", key),
		log.Uint8("register", i.state.Target))
	i.state = State{Mode: Running}
}

// IsKeyPressed returns whether the key is currently held down.
// It panics if the key is not in [0, KeyCount).
func (i *Interpreter) IsKeyPressed(key byte) bool {
	checkKey(key)
	return i.keyPressed(key)
}

func (i *Interpreter) keyPressed(key byte) bool {
	return key < KeyCount && i.keys&(1<<key) != 0
}

// State returns the current run state.
func (i *Interpreter) State() State {
	return i.state
}

// Waiting returns whether execution is suspended until a key release.
func (i *Interpreter) Waiting() bool {
	return i.state.Mode == WaitingForKey
}

// Err returns the terminal execution error, if any.
func (i *Interpreter) Err() error {
	return i.err
}

// PC returns the address of the next instruction.
func (i *Interpreter) PC() uint16 {
	return i.pc
}

// I returns the index register.
func (i *Interpreter) I() uint16 {
	return i.index
}

// Registers returns a copy of the general purpose registers.
func (i *Interpreter) Registers() register.Registers {
	return i.reg
}

// DelayTimer returns the delay timer value.
func (i *Interpreter) DelayTimer() byte {
	return i.delayTimer
}

// SoundTimer returns the sound timer value.
func (i *Interpreter) SoundTimer() byte {
	return i.soundTimer
}

// SoundActive returns whether the sound timer is running.
func (i *Interpreter) SoundActive() bool {
	return i.soundTimer > 0
}

func checkKey(key byte) {
	if key >= KeyCount {
		panic(fmt.Sprintf("key %d out of range", key))
	}
}
