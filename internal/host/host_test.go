package host

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func unpaced(cycles, frames int) Config {
	return Config{CyclesPerFrame: cycles, MaxFrames: frames}
}

func TestRunner_Frame(t *testing.T) {
	machine := newMockMachine()
	frontend := &mockFrontend{}
	r := New(log.NewTestLogger(t), machine, frontend, unpaced(10, 0))

	quit, err := r.Frame()
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 10, machine.ticks)
	assert.Equal(t, 1, machine.frameTicks)
	assert.Equal(t, 1, frontend.rendered)
	assert.Equal(t, 1, r.Frames())
}

func TestRunner_FrameStopsWhenWaiting(t *testing.T) {
	machine := newMockMachine()
	machine.waitAfter = 3
	frontend := &mockFrontend{
		events: [][]KeyEvent{
			nil,
			{{Key: 0x7, Pressed: true}, {Key: 0x7, Pressed: false}},
		},
	}
	r := New(log.NewTestLogger(t), machine, frontend, unpaced(10, 0))

	_, err := r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, 3, machine.ticks)
	assert.Equal(t, 1, machine.frameTicks)

	_, err = r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, 3, machine.ticks)
	assert.Equal(t, 2, machine.frameTicks)
	assert.Equal(t, []byte{0x7}, machine.keysDown)
	assert.Equal(t, []byte{0x7}, machine.keysUp)

	_, err = r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, 13, machine.ticks)
}

func TestRunner_RunFrameLimit(t *testing.T) {
	machine := newMockMachine()
	frontend := &mockFrontend{}
	r := New(log.NewTestLogger(t), machine, frontend, unpaced(5, 4))

	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 4, r.Frames())
	assert.Equal(t, 20, machine.ticks)
	assert.Equal(t, 4, frontend.rendered)
}

func TestRunner_RunQuit(t *testing.T) {
	machine := newMockMachine()
	frontend := &mockFrontend{quitAt: 2}
	r := New(log.NewTestLogger(t), machine, frontend, unpaced(1, 0))

	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 2, r.Frames())
}

func TestRunner_RunMachineError(t *testing.T) {
	errTest := errors.New("test failure")
	machine := newMockMachine()
	machine.err = errTest
	machine.errAfter = 7
	r := New(log.NewTestLogger(t), machine, &mockFrontend{}, unpaced(5, 0))

	err := r.Run(context.Background())
	assert.True(t, errors.Is(err, errTest))
	assert.ErrorContains(t, err, "running frame 1")
	assert.Equal(t, 1, r.Frames())
}

func TestRunner_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(log.NewTestLogger(t), newMockMachine(), &mockFrontend{}, DefaultConfig())
	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, r.Frames())
}

func TestRunner_Interpreter(t *testing.T) {
	program := []byte{
		0x60, 0x00, // LD V0, $00
		0xF0, 0x29, // LD F, V0
		0xD1, 0x15, // DRW V1, V1, 5
		0xF2, 0x0A, // LD V2, K
		0x12, 0x08, // JP $208
	}
	in, err := interpreter.New(log.NewTestLogger(t), memory.NewRom(program), fixedRandom{}, interpreter.Options{})
	assert.NoError(t, err)

	frontend := &mockFrontend{
		events: [][]KeyEvent{
			nil,
			{{Key: 0xB, Pressed: true}},
			{{Key: 0xB, Pressed: false}},
		},
	}
	r := New(log.NewTestLogger(t), in, frontend, unpaced(100, 4))
	assert.NoError(t, r.Run(context.Background()))

	// glyph "0" has 14 lit pixels
	assert.Equal(t, 14, frontend.lit)
	assert.Equal(t, byte(0xB), in.Registers().Get(register.V2))
	assert.False(t, in.Waiting())
	assert.Equal(t, uint16(0x208), in.PC())
}

type fixedRandom struct{}

func (fixedRandom) Byte() byte {
	return 0
}
