package world

import (
	"cityscape/internal/util"
	"cityscape/pkg/config"
)

// State is the whole mutable scene. It is advanced by Step on the tick
// thread and read by the composer between ticks.
type State struct {
	Vehicles    []Vehicle
	Pedestrians []Pedestrian
	Buildings   []Building
	Trees       []TreeSpot
	Grass       []GrassStrip
	Weather     Weather
	SunAngle    float64

	cfg  config.Config
	rng  *util.Random
	seed int64
}

// NewState builds the initial roster. A zero seed falls back to the
// configured seed, and a zero configured seed picks one from the clock.
func NewState(cfg *config.Config, seed int64) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	rng := util.NewRandom(seed)

	s := &State{
		cfg:  *cfg,
		rng:  rng,
		seed: rng.Seed(),
	}
	s.populate()
	return s
}

// Seed returns the seed the roster and particles were generated from
func (s *State) Seed() int64 {
	return s.seed
}

// Config returns the configuration the state was built with
func (s *State) Config() *config.Config {
	return &s.cfg
}

// Reset rebuilds the scene from the original seed
func (s *State) Reset() {
	s.rng = util.NewRandom(s.seed)
	s.populate()
}

func (s *State) populate() {
	s.Weather = Weather{Mode: Sunny}
	s.SunAngle = s.cfg.Simulation.SunInitial
	s.Buildings = layoutBuildings()
	s.Trees = layoutTrees()
	s.Grass = []GrassStrip{
		{X: -11, Z: 0, W: 6, D: 220},
		{X: 11, Z: 0, W: 6, D: 220},
	}
	s.Vehicles = initialVehicles()
	s.Pedestrians = s.initialPedestrians()
	// drops exist from the start so a manual switch has something to show
	s.spawnRain()
}

func layoutBuildings() []Building {
	buildings := make([]Building, 0, 12)
	for i := 0; i < 6; i++ {
		z := -50.0 + float64(i)*20
		if i == 2 {
			z += 3
		}
		h := 6.0 + float64(i%4)*2.5
		buildings = append(buildings, Building{X: -9, Z: z, W: 6, D: 8, H: h})
	}
	for i := 0; i < 6; i++ {
		z := -50.0 + float64(i)*20
		if i%2 == 1 {
			z -= 2
		} else {
			z += 2
		}
		h := 5.0 + float64(i%5)*2
		buildings = append(buildings, Building{X: 9, Z: z, W: 6, D: 8, H: h})
	}
	return buildings
}

var (
	leftTreeX  = []float64{-16.5, -15, -17, -14.5, -16, -15.5, -17.5, -14, -16.8, -15.2}
	rightTreeX = []float64{16.5, 15, 17, 14.5, 16, 15.5, 17.5, 14, 16.8, 15.2}
)

func layoutTrees() []TreeSpot {
	trees := make([]TreeSpot, 0, 32)
	for i, x := range leftTreeX {
		trees = append(trees, TreeSpot{X: x, Z: -85 + float64(i)*20, Scale: 0.9 + float64(i%3)*0.1})
	}
	for i, x := range rightTreeX {
		trees = append(trees, TreeSpot{X: x, Z: -80 + float64(i)*20, Scale: 0.95 + float64(i%3)*0.1})
	}
	for i := 0; i < 6; i++ {
		trees = append(trees,
			TreeSpot{X: -28 + float64(i%3)*2, Z: -90 + float64(i)*35, Scale: 1.2},
			TreeSpot{X: 28 - float64(i%3)*2, Z: -85 + float64(i)*33, Scale: 1.2},
		)
	}
	return trees
}

// Lanes: x = -1.2 drives toward +z, x = 1.2 toward -z.
func initialVehicles() []Vehicle {
	return []Vehicle{
		{X: -1.2, Z: -30, Speed: 0.02, Color: RGB{0.9, 0.1, 0.1}, Kind: Sedan},
		{X: -1.2, Z: -10, Speed: 0.018, Color: RGB{0.1, 0.8, 0.2}, Kind: Sports},
		{X: 1.2, Z: 30, Speed: -0.015, Color: RGB{0.1, 0.1, 0.9}, Kind: SUV},
		{X: 1.2, Z: 10, Speed: -0.016, Color: RGB{0.95, 0.6, 0.12}, Kind: Truck},
	}
}

func (s *State) initialPedestrians() []Pedestrian {
	peds := make([]Pedestrian, 0, 16)
	for i := 0; i < 8; i++ {
		z := -60 + float64(i)*15 + float64(s.rng.Intn(10)-5)*0.4
		dir := -1.0
		if i%2 == 1 {
			dir = 1
		}

		peds = append(peds, Pedestrian{
			X:     -4.8 + s.rng.Steps(100, 1.0/500),
			Z:     z,
			Dir:   dir,
			Speed: 0.005 + s.rng.Steps(3, 1.0/300),
			Phase: s.rng.Steps(100, 0.01),
		})
		peds = append(peds, Pedestrian{
			X:     4.8 + s.rng.Steps(100, 1.0/500),
			Z:     z + float64(s.rng.Intn(10)-5),
			Dir:   -dir,
			Speed: 0.005 + s.rng.Steps(3, 1.0/300),
			Phase: s.rng.Steps(100, 0.01),
		})
	}
	return peds
}
