package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Step advances the scene by one tick of dt seconds. Vehicle, pedestrian
// and sun motion is per tick; only weather and rain scale with dt.
func (s *State) Step(dt float64) {
	s.stepWeather(dt)
	if s.Weather.Mode == Rainy {
		s.stepRain(dt)
	}

	for i := range s.Vehicles {
		s.stepVehicle(&s.Vehicles[i])
	}
	for i := range s.Pedestrians {
		s.stepPedestrian(&s.Pedestrians[i])
	}
	s.stepSun()
}

// ToggleWeather flips the mode by hand. The intensity ramp and the cycle
// timer both restart.
func (s *State) ToggleWeather() {
	if s.Weather.Mode == Sunny {
		s.switchTo(Rainy)
	} else {
		s.switchTo(Sunny)
	}
	s.Weather.Timer = 0
}

// SunPosition returns the sun on its arc for the current angle
func (s *State) SunPosition() mgl64.Vec3 {
	return SunAt(s.SunAngle, s.cfg.Simulation.SunRadius)
}

// SunAt places the sun at angle degrees on an arc of the given radius,
// lifted 6 units and pushed back 10 units along -z.
func SunAt(angle, radius float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(angle)
	return mgl64.Vec3{
		radius * math.Cos(rad),
		radius*math.Sin(rad) + 6,
		-10,
	}
}

func (s *State) stepVehicle(v *Vehicle) {
	sc := s.cfg.Simulation
	v.Z += v.Speed * sc.CarDistance
	v.Wheel = wrapDegrees(v.Wheel + v.Speed*sc.WheelRotation)

	if v.Speed > 0 {
		if v.Z > sc.TrackBound {
			v.Z = -sc.TrackBound
		}
	} else if v.Z < -sc.TrackBound {
		v.Z = sc.TrackBound
	}
}

func (s *State) stepPedestrian(p *Pedestrian) {
	sc := s.cfg.Simulation
	p.Z += p.Dir * p.Speed * sc.WalkDistance

	if p.Z > sc.SidewalkBound {
		p.Z = sc.SidewalkBound
		p.Dir = -p.Dir
	} else if p.Z < -sc.SidewalkBound {
		p.Z = -sc.SidewalkBound
		p.Dir = -p.Dir
	}

	p.Phase += sc.GaitBase + sc.GaitSpeed*p.Speed
	for p.Phase > sc.GaitWrap {
		p.Phase -= sc.GaitWrap
	}
}

func (s *State) stepSun() {
	sc := s.cfg.Simulation
	s.SunAngle += sc.SunStep
	if s.SunAngle > sc.SunSet {
		s.SunAngle = sc.SunMorning
	}
}

// wrapDegrees folds an angle into (-360, 360]
func wrapDegrees(a float64) float64 {
	for a > 360 {
		a -= 360
	}
	for a <= -360 {
		a += 360
	}
	return a
}
