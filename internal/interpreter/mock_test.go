package interpreter

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedRandom returns the same byte for every call.
type fixedRandom byte

func (r fixedRandom) Byte() byte {
	return byte(r)
}

// newTestInterpreter returns an interpreter with the given program loaded at the program start.
func newTestInterpreter(t *testing.T, program ...byte) *Interpreter {
	t.Helper()
	in, err := New(log.NewTestLogger(t), memory.NewRom(program), fixedRandom(0xFF), Options{Trace: true})
	assert.NoError(t, err)
	return in
}

// run executes the given number of ticks and fails the test on any error.
func run(t *testing.T, in *Interpreter, ticks int) {
	t.Helper()
	for range ticks {
		assert.NoError(t, in.Tick())
	}
}
