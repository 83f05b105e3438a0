package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cityscape/pkg/world"
)

// Pedestrian builds a walking figure. Legs shuffle sideways and arms swing
// about the x axis, both driven by the gait phase.
func Pedestrian(p world.Pedestrian, mode world.Mode) []Part {
	pal := PaletteFor(mode)
	base := translate(float32(p.X), 0, float32(p.Z))
	swing := float32(math.Sin(p.Phase*6.28) * 0.25)

	return []Part{
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.9, 0), scale(0.35, 0.7, 0.25)), Material: pal.Skin},
		{Solid: SphereSolid(0.18, 10, 8), Model: chain(base, translate(0, 1.5, 0)), Material: pal.Head},
		{Solid: UnitCube(), Model: chain(base, translate(-0.09+0.02*swing, 0.35, 0), scale(0.12, 0.7, 0.12)), Material: legMaterial},
		{Solid: UnitCube(), Model: chain(base, translate(0.09-0.02*swing, 0.35, 0), scale(0.12, 0.7, 0.12)), Material: legMaterial},
		{Solid: UnitCube(), Model: chain(base, translate(-0.28, 1.05, 0), rotateX(swing*30), scale(0.1, 0.6, 0.1)), Material: armMaterial},
		{Solid: UnitCube(), Model: chain(base, translate(0.28, 1.05, 0), rotateX(-swing*30), scale(0.1, 0.6, 0.1)), Material: armMaterial},
	}
}

// Body builds the parts of one vehicle archetype
type Body func(v world.Vehicle) []Part

var bodies = map[world.Archetype]Body{
	world.Sedan:  sedanBody,
	world.SUV:    suvBody,
	world.Sports: sportsBody,
	world.Truck:  truckBody,
}

// BodyFor returns the body builder of an archetype. Unknown archetypes
// are drawn as sedans.
func BodyFor(a world.Archetype) Body {
	if b, ok := bodies[a]; ok {
		return b
	}
	return sedanBody
}

// Vehicle builds the parts of a car through its archetype's body
func Vehicle(v world.Vehicle) []Part {
	return BodyFor(v.Kind)(v)
}

type wheelSet struct {
	y          float32
	offsets    [][2]float32 // x, z
	tube, ring float32
}

func (ws wheelSet) parts(base mgl32.Mat4, spin float64) []Part {
	tire := TorusSolid(ws.tube, ws.ring, 8, 12)
	parts := make([]Part, 0, len(ws.offsets))
	for _, o := range ws.offsets {
		parts = append(parts, Part{
			Solid:    tire,
			Model:    chain(base, translate(o[0], ws.y, o[1]), rotateY(90), rotateZ(float32(spin))),
			Material: tireMaterial,
		})
	}
	return parts
}

// corners returns the four wheel offsets (±x, ±z)
func corners(x, z float32) [][2]float32 {
	return [][2]float32{{-x, -z}, {x, -z}, {-x, z}, {x, z}}
}

func vehicleBase(v world.Vehicle, y float32) mgl32.Mat4 {
	return translate(float32(v.X), y, float32(v.Z))
}

func sedanBody(v world.Vehicle) []Part {
	base := vehicleBase(v, 0.3)
	paint := FromWorld(v.Color)
	parts := []Part{
		{Solid: UnitCube(), Model: chain(base, scale(1, 0.45, 2.2)), Material: Surface(paint, 30)},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.25, -0.3), scale(0.7, 0.4, 1)), Material: cabinMaterial},
		{Solid: SphereSolid(0.08, 8, 8), Model: chain(base, translate(0.4, 0.1, 0.9)), Material: headlightMaterial},
		{Solid: SphereSolid(0.08, 8, 8), Model: chain(base, translate(-0.4, 0.1, 0.9)), Material: headlightMaterial},
	}
	wheels := wheelSet{y: -0.15, offsets: corners(0.55, 0.6), tube: 0.08, ring: 0.12}
	return append(parts, wheels.parts(base, v.Wheel)...)
}

func suvBody(v world.Vehicle) []Part {
	base := vehicleBase(v, 0.4)
	paint := FromWorld(v.Color)
	parts := []Part{
		{Solid: UnitCube(), Model: chain(base, scale(1.2, 0.6, 2.4)), Material: Surface(paint, 30)},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.35, -0.2), scale(0.9, 0.5, 1.2)), Material: cabinMaterial},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.7, 0), scale(0.8, 0.05, 1.8)), Material: rackMaterial},
	}
	wheels := wheelSet{y: -0.2, offsets: corners(0.65, 0.7), tube: 0.1, ring: 0.15}
	return append(parts, wheels.parts(base, v.Wheel)...)
}

func sportsBody(v world.Vehicle) []Part {
	base := vehicleBase(v, 0.25)
	paint := FromWorld(v.Color)
	parts := []Part{
		{Solid: UnitCube(), Model: chain(base, scale(0.9, 0.3, 1.8)), Material: Surface(paint, 60)},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.2, -0.2), scale(0.7, 0.25, 0.9)), Material: tintedMaterial},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.4, -0.8), scale(0.6, 0.05, 0.2)), Material: Surface(paint.Scale(0.7), 30)},
	}
	wheels := wheelSet{y: -0.1, offsets: corners(0.5, 0.5), tube: 0.06, ring: 0.1}
	return append(parts, wheels.parts(base, v.Wheel)...)
}

// The truck has two axles under the cab and a wide one under the cargo box.
var truckWheels = [][2]float32{
	{-0.7, -0.5}, {0.7, -0.5},
	{-1.5, -0.5}, {1.5, -0.5},
	{-1.5, 1.2}, {1.5, 1.2},
}

func truckBody(v world.Vehicle) []Part {
	base := vehicleBase(v, 0.5)
	paint := FromWorld(v.Color)
	parts := []Part{
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.3, -0.8), scale(1, 0.8, 1)), Material: Surface(paint, 30)},
		{Solid: UnitCube(), Model: chain(base, translate(0, 0.4, 0.8), scale(1.4, 0.9, 2)), Material: Surface(paint.Scale(0.8), 30)},
	}
	wheels := wheelSet{y: -0.3, offsets: truckWheels, tube: 0.12, ring: 0.18}
	return append(parts, wheels.parts(base, v.Wheel)...)
}
