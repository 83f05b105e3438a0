package geometry

import (
	"cityscape/pkg/world"
)

// Palette holds every weather-dependent surface of the scene
type Palette struct {
	Ground   Material
	Road     Material
	Sidewalk Material
	Grass    Material
	Blades   [3]Color
	Building Material
	Roof     Material
	Glass    Material
	Trunk    Material
	Leaves   Material
	Skin     Material
	Head     Material
}

var sunnyPalette = Palette{
	Ground:   Surface(RGB(0.16, 0.55, 0.2), 2),
	Road:     Surface(RGB(0.08, 0.08, 0.08), 5),
	Sidewalk: Surface(RGB(0.5, 0.5, 0.5), 2),
	Grass:    Surface(RGB(0.16, 0.55, 0.2), 2),
	Blades: [3]Color{
		RGB(0.08, 0.45, 0.12),
		RGB(0.12, 0.55, 0.15),
		RGB(0.15, 0.65, 0.18),
	},
	Building: Surface(RGB(0.58, 0.58, 0.62), 30),
	Roof:     Surface(RGB(0.15, 0.15, 0.15), 5),
	Glass:    Surface(RGB(0.7, 0.85, 1.0), 80).Glowing(RGB(0.1, 0.12, 0.15)),
	Trunk:    Surface(RGB(0.45, 0.25, 0.1), 10),
	Leaves:   Surface(RGB(0.1, 0.5, 0.12), 10),
	Skin:     Surface(RGB(0.8, 0.55, 0.45), 10),
	Head:     Surface(RGB(0.95, 0.85, 0.76), 10),
}

// Rain darkens everything and gives it a wet, duller look.
var rainyPalette = Palette{
	Ground:   Surface(RGB(0.12, 0.45, 0.16), 1),
	Road:     Surface(RGB(0.05, 0.05, 0.06), 3),
	Sidewalk: Surface(RGB(0.4, 0.4, 0.45), 1),
	Grass:    Surface(RGB(0.12, 0.45, 0.16), 1),
	Blades: [3]Color{
		RGB(0.06, 0.35, 0.1),
		RGB(0.09, 0.45, 0.12),
		RGB(0.12, 0.55, 0.14),
	},
	Building: Surface(RGB(0.45, 0.45, 0.5), 20),
	Roof:     Surface(RGB(0.1, 0.1, 0.12), 3),
	Glass:    Surface(RGB(0.5, 0.6, 0.8), 60).Glowing(RGB(0.1, 0.12, 0.15)),
	Trunk:    Surface(RGB(0.35, 0.2, 0.08), 8),
	Leaves:   Surface(RGB(0.08, 0.4, 0.1), 8),
	Skin:     Surface(RGB(0.7, 0.5, 0.4), 8),
	Head:     Surface(RGB(0.85, 0.75, 0.66), 8),
}

// PaletteFor returns the palette of a weather mode. There is no blending
// between the two.
func PaletteFor(mode world.Mode) Palette {
	if mode == world.Rainy {
		return rainyPalette
	}
	return sunnyPalette
}

// Surfaces that look the same in any weather
var (
	frameMaterial     = Surface(RGB(0.15, 0.15, 0.15), 5)
	sillMaterial      = Surface(RGB(0.3, 0.3, 0.3), 10)
	doorMaterial      = Surface(RGB(0.36, 0.22, 0.1), 10)
	knobMaterial      = Surface(RGB(0.9, 0.82, 0.2), 10)
	legMaterial       = Surface(RGB(0.15, 0.15, 0.18), 5)
	armMaterial       = Surface(RGB(0.18, 0.14, 0.1), 5)
	cabinMaterial     = Surface(RGB(0.85, 0.95, 1.0), 10)
	headlightMaterial = Surface(RGB(0.9, 0.9, 0.7), 50)
	tireMaterial      = Surface(RGB(0.02, 0.02, 0.02), 5)
	rackMaterial      = Surface(RGB(0.3, 0.3, 0.3), 10)
	tintedMaterial    = Surface(RGB(0.2, 0.2, 0.2), 40)

	centerLineColor = RGB(1.0, 0.9, 0.0)
	laneLineColor   = RGB(1.0, 1.0, 1.0)
	rainColor       = Color{0.7, 0.7, 1.0, 0.6}
)
