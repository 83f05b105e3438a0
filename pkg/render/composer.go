package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"cityscape/pkg/geometry"
	"cityscape/pkg/world"
)

// Pass names in draw order
const (
	PassSun         = "sun"
	PassGround      = "ground"
	PassRoad        = "road"
	PassMarkings    = "markings"
	PassSidewalks   = "sidewalks"
	PassGrass       = "grass"
	PassGrassBlades = "grass-blades"
	PassShadows     = "shadows"
	PassBuildings   = "buildings"
	PassTrees       = "trees"
	PassVehicles    = "vehicles"
	PassPedestrians = "pedestrians"
	PassRain        = "rain"
)

const (
	markingWidth = 3
	bladeWidth   = 1.5
	rainWidth    = 1
)

// Composer turns the scene state into one frame of draw calls. Opaque
// ground layers go first, blended shadows sit under the buildings and
// rain is drawn last.
type Composer struct {
	markings []geometry.Line

	grassSeed int64
	patches   map[world.Mode][]grassPatch
}

type grassPatch struct {
	base   geometry.Quad
	blades []geometry.Line
}

// NewComposer creates a composer with the static street markings built
func NewComposer() *Composer {
	return &Composer{
		markings: geometry.RoadMarkings(),
		patches:  make(map[world.Mode][]grassPatch),
	}
}

// Compose draws the whole scene
func (c *Composer) Compose(r Renderer, s *world.State) {
	w := s.Weather
	mode := w.Mode
	sun := s.SunPosition()

	r.Clear(AtmosphereFor(w).Sky)
	r.SetLight(LightFor(w, sun))

	if SunVisible(w) {
		pos := mgl32.Vec3{float32(sun.X()), float32(sun.Y()), float32(sun.Z())}
		c.pass(r, Pass{Name: PassSun, Lit: true}, func() {
			for _, p := range geometry.SunDisc(pos) {
				r.DrawPart(p)
			}
		})
	}

	c.pass(r, Pass{Name: PassGround, Lit: true}, func() {
		r.DrawQuad(geometry.Ground(mode))
	})
	c.pass(r, Pass{Name: PassRoad, Lit: true}, func() {
		r.DrawQuad(geometry.Road(mode))
	})
	c.pass(r, Pass{Name: PassMarkings, LineWidth: markingWidth}, func() {
		r.DrawLines(c.markings)
	})
	c.pass(r, Pass{Name: PassSidewalks, Lit: true}, func() {
		for _, q := range geometry.Sidewalks(mode) {
			r.DrawQuad(q)
		}
	})

	grass := c.grass(s, mode)
	c.pass(r, Pass{Name: PassGrass, Lit: true}, func() {
		for _, g := range grass {
			r.DrawQuad(g.base)
		}
	})
	c.pass(r, Pass{Name: PassGrassBlades, LineWidth: bladeWidth}, func() {
		for _, g := range grass {
			r.DrawLines(g.blades)
		}
	})

	c.pass(r, Pass{Name: PassShadows, Blend: true}, func() {
		for _, b := range s.Buildings {
			if q, ok := geometry.Shadow(b, sun, mode, w.Intensity); ok {
				r.DrawQuad(q)
			}
		}
	})
	c.pass(r, Pass{Name: PassBuildings, Lit: true}, func() {
		for _, b := range s.Buildings {
			drawParts(r, geometry.Building(b, mode))
		}
	})
	c.pass(r, Pass{Name: PassTrees, Lit: true}, func() {
		for _, t := range s.Trees {
			drawParts(r, geometry.Tree(float32(t.X), float32(t.Z), float32(t.Scale), mode))
		}
	})
	c.pass(r, Pass{Name: PassVehicles, Lit: true}, func() {
		for _, v := range s.Vehicles {
			drawParts(r, geometry.Vehicle(v))
		}
	})
	c.pass(r, Pass{Name: PassPedestrians, Lit: true}, func() {
		for _, p := range s.Pedestrians {
			drawParts(r, geometry.Pedestrian(p, mode))
		}
	})

	if rain := geometry.RainStreaks(w.Drops, w.Intensity); len(rain) > 0 {
		c.pass(r, Pass{Name: PassRain, Blend: true, LineWidth: rainWidth}, func() {
			r.DrawLines(rain)
		})
	}
}

func (c *Composer) pass(r Renderer, p Pass, draw func()) {
	r.BeginPass(p)
	draw()
	r.EndPass()
}

// grass returns the lawn and blades of every strip, generated once per
// weather mode and scene seed.
func (c *Composer) grass(s *world.State, mode world.Mode) []grassPatch {
	if c.grassSeed != s.Seed() {
		c.grassSeed = s.Seed()
		c.patches = make(map[world.Mode][]grassPatch)
	}
	if cached, ok := c.patches[mode]; ok && len(cached) == len(s.Grass) {
		return cached
	}

	out := make([]grassPatch, len(s.Grass))
	for i, g := range s.Grass {
		out[i].base, out[i].blades = geometry.GrassPatch(g, mode, s.Seed()+int64(i)+1)
	}
	c.patches[mode] = out
	return out
}

func drawParts(r Renderer, parts []geometry.Part) {
	for _, p := range parts {
		r.DrawPart(p)
	}
}
