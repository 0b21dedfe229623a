package memory

import (
	"errors"
	"fmt"
	"io"
)

// RomSize is the capacity of a program image.
const RomSize = Size - ProgramStart

// Rom is a raw program image as loaded from a file. It has no header, the
// bytes are placed verbatim at ProgramStart.
type Rom struct {
	data   [RomSize]byte
	length int
}

// ReadRom reads a program image from the reader. Input shorter than RomSize is
// zero filled, any input beyond RomSize is not consumed.
func ReadRom(r io.Reader) (*Rom, error) {
	rom := &Rom{}
	n, err := io.ReadFull(r, rom.data[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	rom.length = n
	return rom, nil
}

// NewRom returns a program image containing the given bytes. Bytes beyond
// RomSize are dropped.
func NewRom(program []byte) *Rom {
	rom := &Rom{}
	rom.length = copy(rom.data[:], program)
	return rom
}

// Len returns the number of program bytes that were provided when the image
// was created.
func (r *Rom) Len() int {
	return r.length
}

// Bytes returns a copy of the full image including the zero filled tail.
func (r *Rom) Bytes() []byte {
	b := make([]byte, RomSize)
	copy(b, r.data[:])
	return b
}
