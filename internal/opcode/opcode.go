// Package opcode decodes CHIP-8 instruction words into their nibble fields.
//
// Every instruction is 2 bytes, stored big endian:
//
//	byte 0: CCCC XXXX   class and register X
//	byte 1: YYYY NNNN   register Y and 4-bit immediate N
//
// byte 1 on its own is the 8-bit immediate NN, the low 12 bits of the word
// are the address NNN.
package opcode

import "fmt"

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// Instruction is a decoded instruction word.
type Instruction struct {
	Word  uint16
	Class byte   // high nibble of byte 0
	X     byte   // low nibble of byte 0
	Y     byte   // high nibble of byte 1
	N     byte   // low nibble of byte 1
	NN    byte   // byte 1
	NNN   uint16 // low 12 bits
}

// Decode splits the two instruction bytes into their fields.
func Decode(b0, b1 byte) Instruction {
	w := uint16(b0)<<8 | uint16(b1)
	return Instruction{
		Word:  w,
		Class: b0 >> 4,
		X:     b0 & 0xF,
		Y:     b1 >> 4,
		N:     b1 & 0xF,
		NN:    b1,
		NNN:   w & 0x0FFF,
	}
}

// String returns the instruction word as 4 hex digits.
func (i Instruction) String() string {
	return fmt.Sprintf("%04X", i.Word)
}
