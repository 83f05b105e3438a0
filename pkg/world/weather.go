package world

import (
	"cityscape/internal/util"
)

// Mode is the discrete weather state
type Mode int

// Weather modes
const (
	Sunny Mode = iota
	Rainy
)

// String returns the mode name
func (m Mode) String() string {
	if m == Rainy {
		return "rainy"
	}
	return "sunny"
}

// Target returns the intensity the mode eases toward
func (m Mode) Target() float64 {
	if m == Rainy {
		return 1
	}
	return 0
}

// Raindrop is one rain particle. Z is the coordinate that decreases as the
// drop falls and doubles as its depth position in the scene.
type Raindrop struct {
	X, Z float64
}

// Weather holds the mode, the switch timer, the eased rain intensity and
// the rain particles. Mode and intensity are kept apart so the intensity
// ramps continuously across mode switches.
type Weather struct {
	Mode      Mode
	Timer     float64
	Intensity float64
	Drops     []Raindrop
}

// switchTo sets a new mode and restarts the intensity ramp. Entering Rainy
// regenerates the particles.
func (s *State) switchTo(mode Mode) {
	s.Weather.Mode = mode
	s.Weather.Intensity = 0
	if mode == Rainy {
		s.spawnRain()
	}
}

func (s *State) stepWeather(dt float64) {
	w := &s.Weather
	w.Timer += dt

	if w.Timer >= s.cfg.Weather.CycleSeconds {
		w.Timer = 0
		if w.Mode == Sunny {
			s.switchTo(Rainy)
		} else {
			s.switchTo(Sunny)
		}
	}

	w.Intensity = util.Clamp(util.Approach(w.Intensity, w.Mode.Target(), dt*s.cfg.Weather.EaseRate), 0, 1)
}

func (s *State) spawnRain() {
	n := s.cfg.Weather.Drops
	if cap(s.Weather.Drops) >= n {
		s.Weather.Drops = s.Weather.Drops[:n]
	} else {
		s.Weather.Drops = make([]Raindrop, n)
	}
	for i := range s.Weather.Drops {
		s.Weather.Drops[i] = Raindrop{X: s.dropLateral(), Z: s.dropLateral()}
	}
}

func (s *State) stepRain(dt float64) {
	wc := s.cfg.Weather
	fall := dt * wc.FallSpeed * s.Weather.Intensity

	for i := range s.Weather.Drops {
		d := &s.Weather.Drops[i]
		d.Z -= fall
		if d.Z < wc.Floor {
			d.X = s.dropLateral()
			d.Z = wc.Ceiling + float64(s.rng.Intn(spanInt(wc.SpawnRange)))
		}
	}
}

// dropLateral picks an integer position in [-spread, spread)
func (s *State) dropLateral() float64 {
	spread := s.cfg.Weather.Spread
	return float64(s.rng.Intn(spanInt(2*spread))) - spread
}

func spanInt(v float64) int {
	if n := int(v); n > 0 {
		return n
	}
	return 1
}
