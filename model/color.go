package model

import (
	"fmt"
	"strconv"
)

// Color is an RGBA color. Opaque black doubles as "not set" throughout the
// model, so an explicit black in the source cannot be told apart from no
// color at all.
type Color struct {
	R, G, B, A uint8
}

// DefaultColor is the unset color: opaque black.
var DefaultColor = Color{A: 255}

// IsDefault reports whether c is the unset sentinel.
func (c Color) IsDefault() bool {
	return c == DefaultColor
}

// Hex returns the color as RRGGBB, or RRGGBBAA when it is not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor parses a 6-digit RGB or 8-digit RGBA hex string such as
// "FF0000" or "00FF0080". Any other input, including Word's "auto",
// returns DefaultColor and false.
func ParseColor(s string) (Color, bool) {
	if len(s) != 6 && len(s) != 8 {
		return DefaultColor, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return DefaultColor, false
	}

	if len(s) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}
