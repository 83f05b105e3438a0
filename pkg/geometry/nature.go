package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"cityscape/internal/util"
	"cityscape/pkg/world"
)

// BladesPerPatch is the number of grass blades drawn on one strip
const BladesPerPatch = 200

// GrassPatch returns the lawn under a grass strip and its blades. Blade
// placement comes from seed alone so a strip looks the same every frame;
// only the shade tiers follow the weather.
func GrassPatch(g world.GrassStrip, mode world.Mode, seed int64) (Quad, []Line) {
	pal := PaletteFor(mode)
	x, z := float32(g.X), float32(g.Z)
	w, d := float32(g.W), float32(g.D)

	base := groundQuad(x-w/2, z-d/2, x+w/2, z+d/2, 0.001, pal.Grass)

	rng := util.NewRandom(seed)
	blades := make([]Line, BladesPerPatch)
	for i := range blades {
		rx := float32(rng.Steps(1000, 0.001))*w - w/2
		rz := float32(rng.Steps(1000, 0.001))*d - d/2
		height := 0.15 + float32(rng.Steps(30, 1.0/200))
		curve := float32(rng.Steps(100, 1.0/500)) - 0.1
		leanX := float32(rng.Steps(100, 1.0/300)) - 0.16
		leanZ := float32(rng.Steps(100, 1.0/300)) - 0.16

		blades[i] = Line{
			From:  mgl32.Vec3{x + rx, 0, z + rz},
			To:    mgl32.Vec3{x + rx + leanX + curve, height, z + rz + leanZ},
			Color: pal.Blades[rng.Intn(3)],
		}
	}
	return base, blades
}

// Tree is a tapered trunk under three stacked cones that shrink upward
func Tree(x, z, size float32, mode world.Mode) []Part {
	pal := PaletteFor(mode)
	parts := make([]Part, 0, 4)

	parts = append(parts, Part{
		Solid:    CylinderSolid(0.18*size, 0.15*size, 1.6*size, 8),
		Model:    chain(translate(x, 0.8, z), rotateX(-90)),
		Material: pal.Trunk,
	})
	for i := 0; i < 3; i++ {
		fi := float32(i)
		parts = append(parts, Part{
			Solid:    ConeSolid(0.9*size-0.2*fi*size, size, 12, 4),
			Model:    chain(translate(x, 1.6+fi*0.7*size, z), rotateX(-90)),
			Material: pal.Leaves,
		})
	}
	return parts
}
