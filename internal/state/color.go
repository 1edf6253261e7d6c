package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex turns "#rgb", "#rrggbb" or "#rrggbbaa" into a color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorOf is ParseHex that falls back to black. Shapes keep whatever string
// the style panel supplied, so renderers need a total conversion.
func ColorOf(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}
