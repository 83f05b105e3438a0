package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cityscape/pkg/world"
)

// Street layout on the x axis: a road of half-width 3.5 flanked by
// sidewalks out to 7.5, all running the length of the track.
const (
	groundHalf   = 200
	trackHalf    = 120
	roadHalf     = 3.5
	sidewalkEdge = 7.5
	markingLift  = 0.002
)

// Ground is the lawn-colored plane under everything
func Ground(mode world.Mode) Quad {
	return groundQuad(-groundHalf, -groundHalf, groundHalf, groundHalf, 0, PaletteFor(mode).Ground)
}

// Road is the asphalt strip along z
func Road(mode world.Mode) Quad {
	return groundQuad(-roadHalf, -trackHalf, roadHalf, trackHalf, 0.001, PaletteFor(mode).Road)
}

// Sidewalks returns the left and right walkways
func Sidewalks(mode world.Mode) []Quad {
	m := PaletteFor(mode).Sidewalk
	return []Quad{
		groundQuad(-sidewalkEdge, -trackHalf, -roadHalf, trackHalf, 0.002, m),
		groundQuad(roadHalf, -trackHalf, sidewalkEdge, trackHalf, 0.002, m),
	}
}

// RoadMarkings returns the dashed yellow center line and the two dashed
// white lane lines.
func RoadMarkings() []Line {
	var lines []Line
	for z := float32(-trackHalf); z < trackHalf; z += 8 {
		lines = append(lines, Line{
			From:  mgl32.Vec3{0, markingLift, z},
			To:    mgl32.Vec3{0, markingLift, z + 4},
			Color: centerLineColor,
		})
	}
	for _, x := range []float32{-0.6, 0.6} {
		for z := float32(-trackHalf); z < trackHalf; z += 15 {
			lines = append(lines, Line{
				From:  mgl32.Vec3{x, markingLift, z},
				To:    mgl32.Vec3{x, markingLift, z + 7},
				Color: laneLineColor,
			})
		}
	}
	return lines
}

// RainStreaks returns one slanted streak per drop, faded by intensity.
// Nothing is drawn without rain.
func RainStreaks(drops []world.Raindrop, intensity float64) []Line {
	if intensity <= 0 || len(drops) == 0 {
		return nil
	}
	c := rainColor.WithAlpha(rainColor.A * float32(intensity))

	lines := make([]Line, len(drops))
	for i, d := range drops {
		y := float32(20 + math.Mod(d.Z*0.3, 5))
		x, z := float32(d.X), float32(d.Z)
		lines[i] = Line{
			From:  mgl32.Vec3{x, y, z},
			To:    mgl32.Vec3{x, y - 2, z - 0.5},
			Color: c,
		}
	}
	return lines
}

// SunDisc is a flat halo sphere around a smaller glowing core
func SunDisc(pos mgl32.Vec3) []Part {
	at := translate(pos.X(), pos.Y(), pos.Z())
	halo := RGB(1, 0.9, 0.5)
	return []Part{
		{Solid: SphereSolid(1.3, 24, 20), Model: at, Material: Flat(halo)},
		{Solid: SphereSolid(0.9, 20, 16), Model: at, Material: Surface(halo, 10).Glowing(RGB(0.6, 0.5, 0.3))},
	}
}
