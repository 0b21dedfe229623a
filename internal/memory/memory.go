// Package memory provides the flat byte addressable memory of the CHIP-8 virtual machine.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: built-in hexadecimal font glyphs
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program space
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of addressable bytes.
	Size = 0x1000

	// ProgramStart is the address the program is loaded at and where execution begins.
	ProgramStart = 0x200

	// FontBase is the address of the first font glyph.
	FontBase = 0x000

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5

	// GlyphCount is the number of font glyphs, one per hexadecimal digit.
	GlyphCount = 16
)

// ErrOutOfBounds is returned for any access that reaches beyond the end of memory.
var ErrOutOfBounds = errors.New("memory access out of bounds")

// ErrFontSize is returned when a font table of the wrong length is installed.
var ErrFontSize = errors.New("invalid font table size")

// Memory is the 4KB main memory of the virtual machine.
type Memory struct {
	data [Size]byte
}

// New returns a new zeroed memory.
func New() *Memory {
	return &Memory{}
}

// LoadRom copies the program bytes into the program space.
func (m *Memory) LoadRom(rom *Rom) {
	copy(m.data[ProgramStart:], rom.data[:])
}

// LoadFont installs the font glyph table at the font base address.
func (m *Memory) LoadFont(sprites []byte) error {
	if len(sprites) != GlyphCount*GlyphSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrFontSize, GlyphCount*GlyphSize, len(sprites))
	}
	copy(m.data[FontBase:], sprites)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("%w: reading address %04x", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// Slice returns the memory range [start, end). The returned slice aliases the
// memory and must not be modified by the caller.
func (m *Memory) Slice(start, end uint16) ([]byte, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	return m.data[start:end:end], nil
}

// MutSlice returns the memory range [start, end) for writing.
func (m *Memory) MutSlice(start, end uint16) ([]byte, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	return m.data[start:end:end], nil
}

// FontOffset returns the address of the glyph of the given hexadecimal digit.
// Only the low nibble of the digit is used.
func (m *Memory) FontOffset(digit byte) uint16 {
	return FontBase + uint16(digit&0xF)*GlyphSize
}

func checkRange(start, end uint16) error {
	if int(end) > Size || start > end {
		return fmt.Errorf("%w: range %04x-%04x", ErrOutOfBounds, start, end)
	}
	return nil
}
