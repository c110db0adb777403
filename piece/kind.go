package piece

import (
	"fmt"
	"image/color"
	"unicode"
)

// Kind identifies one of the seven tetrominoes. The zero value is not a valid kind.
type Kind uint8

const (
	J Kind = iota + 1
	L
	O
	S
	Z
	T
	I
)

// Kinds lists every valid kind in a stable order.
var Kinds = [...]Kind{J, L, O, S, Z, T, I}

var kindLetters = [...]rune{J: 'J', L: 'L', O: 'O', S: 'S', Z: 'Z', T: 'T', I: 'I'}

var kindColors = [...]color.RGBA{
	J: {0, 0, 255, 255},
	L: {255, 165, 0, 255},
	O: {255, 255, 0, 255},
	S: {50, 205, 50, 255},
	Z: {255, 0, 0, 255},
	T: {147, 112, 219, 255},
	I: {0, 255, 255, 255},
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= J && k <= I
}

// Color is the display color of the kind. Invalid kinds are transparent.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return kindColors[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(kindLetters[k])
}

// ParseKind maps a letter such as 'T' or 't' to its Kind.
func ParseKind(letter rune) (Kind, error) {
	upper := unicode.ToUpper(letter)
	for _, k := range Kinds {
		if kindLetters[k] == upper {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, letter)
}
