package math

// Color4 is an RGBA color with components in [0, 1].
type Color4 struct {
	R, G, B, A float64
}

// Opaque returns the color with alpha forced to 1.
func (c Color4) Opaque() Color4 {
	c.A = 1
	return c
}

// Scale returns the color with R, G and B multiplied by s. Alpha is kept.
func (c Color4) Scale(s float64) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A}
}
