// Package keymap maps host keyboard keys to the hexadecimal CHIP-8 keypad.
//
// The keypad is laid out on the left side of a QWERTY keyboard:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
package keymap

import (
	"fmt"
	"strings"
	"unicode"
)

var layout = map[rune]byte{
	'x': 0x0,
	'1': 0x1,
	'2': 0x2,
	'3': 0x3,
	'q': 0x4,
	'w': 0x5,
	'e': 0x6,
	'a': 0x7,
	's': 0x8,
	'd': 0x9,
	'z': 0xA,
	'c': 0xB,
	'4': 0xC,
	'r': 0xD,
	'f': 0xE,
	'v': 0xF,
}

// Lookup returns the keypad code of the host key. Letters are matched case insensitive.
func Lookup(r rune) (byte, bool) {
	code, ok := layout[unicode.ToLower(r)]
	return code, ok
}

// Key returns the host key that is mapped to the keypad code.
func Key(code byte) (rune, bool) {
	for r, c := range layout {
		if c == code {
			return r, true
		}
	}
	return 0, false
}

// Help returns the key bindings in keypad order, for example "0=x 1=1 ... F=v".
func Help() string {
	bindings := make([]string, 0, len(layout))
	for code := range byte(len(layout)) {
		r, _ := Key(code)
		bindings = append(bindings, fmt.Sprintf("%X=%c", code, r))
	}
	return strings.Join(bindings, " ")
}
