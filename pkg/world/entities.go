package world

// Archetype is the closed set of vehicle body styles
type Archetype int

// Vehicle archetypes
const (
	Sedan Archetype = iota
	SUV
	Sports
	Truck
)

// String returns the archetype name
func (a Archetype) String() string {
	switch a {
	case Sedan:
		return "sedan"
	case SUV:
		return "suv"
	case Sports:
		return "sports"
	case Truck:
		return "truck"
	default:
		return "unknown"
	}
}

// RGB is an opaque surface color with components in [0,1]
type RGB struct {
	R, G, B float32
}

// Scale multiplies every component by f
func (c RGB) Scale(f float32) RGB {
	return RGB{c.R * f, c.G * f, c.B * f}
}

// Vehicle is a car driving along one lane of the road. Speed is in
// units per tick; its sign is the direction of travel along z.
type Vehicle struct {
	X     float64
	Z     float64
	Speed float64
	Color RGB
	Kind  Archetype
	Wheel float64 // wheel spin in degrees, kept in (-360, 360]
}

// Pedestrian walks back and forth along a sidewalk
type Pedestrian struct {
	X     float64
	Z     float64
	Dir   float64 // +1 or -1 along z
	Speed float64
	Phase float64 // gait cycle position
}

// Building is an axis-aligned block centered at (X, Z) standing on the ground
type Building struct {
	X, Z float64
	W, D float64
	H    float64
}

// TreeSpot places one tree of the roadside rows
type TreeSpot struct {
	X, Z  float64
	Scale float64
}

// GrassStrip is a rectangular lawn centered at (X, Z)
type GrassStrip struct {
	X, Z float64
	W, D float64
}
