package geometry

import (
	"cityscape/pkg/world"
)

// Color is an RGBA color with components in [0,1]
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque color
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// FromWorld converts a scene color to an opaque Color
func FromWorld(c world.RGB) Color {
	return Color{c.R, c.G, c.B, 1}
}

// Scale multiplies the color channels by f, leaving alpha alone
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// WithAlpha returns the color with a different alpha
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Material describes how a surface reacts to the light. Unlit surfaces are
// drawn flat in their Diffuse color.
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Emission  Color
	Shininess float32
	Unlit     bool
}

var (
	noEmission    = Color{0, 0, 0, 1}
	plainSpecular = Color{0.8, 0.8, 0.8, 1}
)

// Surface returns a lit material with ambient at a fifth of the diffuse
// color and a fixed bright specular highlight.
func Surface(c Color, shininess float32) Material {
	return Material{
		Ambient:   Color{c.R * 0.2, c.G * 0.2, c.B * 0.2, 1},
		Diffuse:   c,
		Specular:  plainSpecular,
		Emission:  noEmission,
		Shininess: shininess,
	}
}

// Glowing returns the material with an emissive term added
func (m Material) Glowing(e Color) Material {
	m.Emission = e
	return m
}

// Flat returns an unlit material drawn in a single color
func Flat(c Color) Material {
	return Material{Diffuse: c, Emission: noEmission, Unlit: true}
}
