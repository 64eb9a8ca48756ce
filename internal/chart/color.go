package chart

import (
	"image/color"
	"strconv"
	"strings"
)

// Hex parses a "#RRGGBB" color and applies alpha in [0,1].
// Malformed input yields opaque black.
func Hex(s string, alpha float64) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(alpha*255 + 0.5),
	}
}

// Hexes parses a list of "#RRGGBB" colors with a shared alpha.
func Hexes(alpha float64, hex ...string) []color.Color {
	out := make([]color.Color, len(hex))
	for i, h := range hex {
		out[i] = Hex(h, alpha)
	}
	return out
}

// cycle returns colors[i] wrapping around; nil colors yield gray.
func cycle(colors []color.Color, i int) color.Color {
	if len(colors) == 0 {
		return color.Gray{Y: 128}
	}
	return colors[i%len(colors)]
}
