// Package display implements the monochrome 64x32 framebuffer of the CHIP-8 virtual machine.
//
// Every row is stored as a 64-bit mask, bit 63 being the leftmost pixel.
// Sprites are XOR composited onto the framebuffer and wrap around on both axes.
package display

import (
	"iter"
	"strings"
)

const (
	// Rows is the number of pixel rows.
	Rows = 32
	// Columns is the number of pixel columns.
	Columns = 64
	// MaxSpriteHeight is the largest number of rows a sprite can have.
	MaxSpriteHeight = 15
)

// Pixel is the state of a single framebuffer pixel.
type Pixel bool

const (
	Off Pixel = false
	On  Pixel = true
)

// IsOn returns whether the pixel is lit.
func (p Pixel) IsOn() bool {
	return p == On
}

// IsOff returns whether the pixel is dark.
func (p Pixel) IsOff() bool {
	return p == Off
}

// Display is the framebuffer.
type Display struct {
	rows [Rows]uint64
}

// New returns a new cleared display.
func New() *Display {
	return &Display{}
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.rows = [Rows]uint64{}
}

// Row returns the bitmask of row i, bit 63 being column 0.
func (d *Display) Row(i int) uint64 {
	return d.rows[i%Rows]
}

// Draw XORs the sprite onto the framebuffer with its top left corner at (x, y).
// Each sprite byte is one row of 8 pixels, most significant bit leftmost.
// Rows past the bottom edge continue at the top and columns past the right edge
// continue at the left. The returned collision flag is set if any pixel that was
// on has been turned off.
// The sprite must not be higher than MaxSpriteHeight rows.
func (d *Display) Draw(sprite []byte, x, y byte) bool {
	shift := uint(x) % Columns
	collision := false

	for r, b := range sprite {
		row := &d.rows[(int(y)+r)%Rows]
		mask := uint64(b) << (Columns - 8)

		collision = xorRow(row, mask>>shift) || collision
		if shift != 0 {
			collision = xorRow(row, mask<<(Columns-shift)) || collision
		}
	}

	return collision
}

// xorRow applies the mask to the row and reports whether a lit pixel got cleared.
func xorRow(row *uint64, mask uint64) bool {
	hit := *row&mask != 0
	*row ^= mask
	return hit
}

// Pixels returns all pixels in row major order, leftmost pixel of every row first.
// The sequence is evaluated lazily and can be iterated multiple times.
func (d *Display) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for _, row := range d.rows {
			for bit := Columns - 1; bit >= 0; bit-- {
				if !yield(Pixel(row>>uint(bit)&1 == 1)) {
					return
				}
			}
		}
	}
}

// String renders the framebuffer as text, see Text.
func (d *Display) String() string {
	return Text(d.Pixels())
}

// Text renders a row major pixel sequence as text, '#' for lit and '.' for
// dark pixels, one line per row.
func Text(pixels iter.Seq[Pixel]) string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))

	column := 0
	for p := range pixels {
		if p.IsOn() {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		column++
		if column == Columns {
			sb.WriteByte('\n')
			column = 0
		}
	}
	return sb.String()
}
