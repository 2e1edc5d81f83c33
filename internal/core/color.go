package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell, packed into a uint32.
// The zero value means "terminal default". Bit 24 marks a set color so
// that black (0x000000) remains distinguishable from unset.
type Color uint32

const colorSet Color = 1 << 24

// RGB constructs a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsSet reports whether the color carries an explicit RGB value.
func (c Color) IsSet() bool {
	return c&colorSet != 0
}

// RGB returns the 8-bit channel values. Zero for the default color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
// Returns an empty string for the default color.
func (c Color) Hex() string {
	if !c.IsSet() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// BlendColor interpolates between two colors by t in [0, 1].
// If either color is unset, the other is returned as-is.
func BlendColor(a, b Color, t float64) Color {
	if !a.IsSet() {
		return b
	}
	if !b.IsSet() {
		return a
	}
	t = ClampF(t, 0, 1)
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return RGB(
		uint8(Lerp(float64(ar), float64(br), t)),
		uint8(Lerp(float64(ag), float64(bg), t)),
		uint8(Lerp(float64(ab), float64(bb), t)),
	)
}
