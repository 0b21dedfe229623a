// Package register implements the general purpose register bank of the CHIP-8 virtual machine.
package register

import (
	"fmt"
	"strings"
)

// Count is the number of general purpose registers.
const Count = 16

// Register indexes V0 to VF.
const (
	V0 byte = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// Flag is the register that receives carry, borrow, shifted out bits and
// sprite collisions. It stays readable and writable like any other register.
const Flag = VF

// Registers holds the 16 general purpose 8-bit registers V0 to VF.
// The type is a plain array so that two register banks can be compared with ==.
type Registers [Count]byte

// Get returns the value of register i. It panics if i is not a valid index.
func (r Registers) Get(i byte) byte {
	checkIndex(i)
	return r[i]
}

// Set writes v into register i. It panics if i is not a valid index.
func (r *Registers) Set(i, v byte) {
	checkIndex(i)
	r[i] = v
}

// Ptr returns a pointer to register i for in place updates.
// It panics if i is not a valid index.
func (r *Registers) Ptr(i byte) *byte {
	checkIndex(i)
	return &r[i]
}

// SetFlag writes v into the flag register.
func (r *Registers) SetFlag(v byte) {
	r[Flag] = v
}

// Store copies registers V0 to Vx inclusive into dst, which has to be at least x+1 bytes long.
func (r *Registers) Store(dst []byte, x byte) {
	checkIndex(x)
	copy(dst[:int(x)+1], r[:int(x)+1])
}

// Load fills registers V0 to Vx inclusive from src, which has to be at least x+1 bytes long.
func (r *Registers) Load(src []byte, x byte) {
	checkIndex(x)
	copy(r[:int(x)+1], src[:int(x)+1])
}

// String returns a hex dump of all registers in index order.
func (r Registers) String() string {
	var sb strings.Builder
	for i, v := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", v)
	}
	return sb.String()
}

func checkIndex(i byte) {
	if i >= Count {
		panic(fmt.Sprintf("register index %d out of range", i))
	}
}
