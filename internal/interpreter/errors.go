package interpreter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned for an instruction word that is not part of the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackUnderflow is returned for a return instruction executed with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrStackOverflow is returned for a call instruction executed with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
)

// ExecError is the terminal error of an instruction that could not be executed.
// It wraps one of the sentinel errors of this package or a memory access error.
type ExecError struct {
	Err   error
	PC    uint16 // address of the failing instruction
	Word  uint16 // raw instruction word, only valid if Fetch is false
	Fetch bool   // the instruction word could not be read
}

func (e *ExecError) Error() string {
	if e.Fetch {
		return fmt.Sprintf("fetching instruction at address %04X: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("executing instruction %04X at address %04X: %v", e.Word, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
