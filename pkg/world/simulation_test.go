package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityscape/pkg/config"
)

const tick = 0.016

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewState(config.DefaultConfig(), 42)
}

func TestInitialRoster(t *testing.T) {
	s := newTestState(t)

	require.Len(t, s.Vehicles, 4)
	assert.Len(t, s.Pedestrians, 16)
	assert.Len(t, s.Buildings, 12)
	assert.Len(t, s.Trees, 32)
	assert.Len(t, s.Grass, 2)
	assert.Len(t, s.Weather.Drops, 500)
	assert.Equal(t, Sunny, s.Weather.Mode)
	assert.Equal(t, 45.0, s.SunAngle)

	kinds := map[Archetype]float64{}
	for _, v := range s.Vehicles {
		kinds[v.Kind] = v.Speed
	}
	assert.Equal(t, 0.02, kinds[Sedan])
	assert.Equal(t, 0.018, kinds[Sports])
	assert.Equal(t, -0.015, kinds[SUV])
	assert.Equal(t, -0.016, kinds[Truck])

	for i, p := range s.Pedestrians {
		if i%2 == 0 {
			assert.InDelta(t, -4.7, p.X, 0.101)
		} else {
			assert.InDelta(t, 4.9, p.X, 0.101)
		}
		assert.Contains(t, []float64{-1, 1}, p.Dir)
		assert.GreaterOrEqual(t, p.Speed, 0.005)
		assert.Less(t, p.Speed, 0.012)
	}

	assert.Equal(t, Building{X: -9, Z: -7, W: 6, D: 8, H: 11}, s.Buildings[2])
	assert.Equal(t, Building{X: 9, Z: -32, W: 6, D: 8, H: 7}, s.Buildings[7])
}

func TestWeatherCycleEntersRain(t *testing.T) {
	s := newTestState(t)
	s.Weather.Drops = nil

	ticks := 0
	for s.Weather.Mode == Sunny && ticks < 700 {
		s.Step(tick)
		ticks++
	}

	require.Equal(t, Rainy, s.Weather.Mode)
	assert.InDelta(t, 625, ticks, 1)
	assert.Greater(t, s.Weather.Intensity, 0.0)
	assert.InDelta(t, tick*0.5, s.Weather.Intensity, 1e-9)
	assert.NotEmpty(t, s.Weather.Drops)
	assert.Less(t, s.Weather.Timer, tick)
}

func TestIntensityStaysBoundedAndMonotonic(t *testing.T) {
	s := newTestState(t)

	prevMode := s.Weather.Mode
	prev := s.Weather.Intensity
	for i := 0; i < 4000; i++ {
		s.Step(tick)
		w := s.Weather
		require.GreaterOrEqual(t, w.Intensity, 0.0)
		require.LessOrEqual(t, w.Intensity, 1.0)

		if w.Mode == prevMode {
			if w.Mode == Rainy {
				require.GreaterOrEqual(t, w.Intensity, prev)
			} else {
				require.LessOrEqual(t, w.Intensity, prev)
			}
		}
		prevMode, prev = w.Mode, w.Intensity
	}
}

func TestRainFallsOnlyWhileRainy(t *testing.T) {
	s := newTestState(t)
	before := append([]Raindrop(nil), s.Weather.Drops...)

	s.Step(tick)
	assert.Equal(t, before, s.Weather.Drops)

	s.ToggleWeather()
	s.Step(tick)
	s.Step(tick)
	for _, d := range s.Weather.Drops {
		assert.GreaterOrEqual(t, d.Z, -100.0)
		assert.Less(t, d.Z, 150.0)
		assert.GreaterOrEqual(t, d.X, -100.0)
		assert.Less(t, d.X, 100.0)
	}
}

func TestRaindropRespawnsAboveCeiling(t *testing.T) {
	s := newTestState(t)
	s.ToggleWeather()
	s.Weather.Intensity = 1
	s.Weather.Drops = []Raindrop{{X: 0, Z: -99.9}}

	s.Step(tick)

	d := s.Weather.Drops[0]
	assert.GreaterOrEqual(t, d.Z, 100.0)
	assert.Less(t, d.Z, 150.0)
}

func TestVehicleWrapsPastTrackEnd(t *testing.T) {
	s := newTestState(t)
	s.Vehicles = []Vehicle{
		{X: -1.2, Z: 119.9, Speed: 0.02, Kind: Sedan},
		{X: 1.2, Z: -119.9, Speed: -0.02, Kind: SUV},
	}

	s.Step(tick)

	assert.Equal(t, -120.0, s.Vehicles[0].Z)
	assert.Equal(t, 0.02, s.Vehicles[0].Speed)
	assert.Equal(t, 120.0, s.Vehicles[1].Z)
	assert.Equal(t, -0.02, s.Vehicles[1].Speed)
}

func TestVehiclesStayOnTrack(t *testing.T) {
	s := newTestState(t)
	s.Vehicles = append(s.Vehicles, Vehicle{Z: 0, Speed: 1.7, Kind: Truck}, Vehicle{Z: 0, Speed: -2.3, Kind: Sports})

	for i := 0; i < 5000; i++ {
		s.Step(tick)
		for _, v := range s.Vehicles {
			require.Greater(t, v.Wheel, -360.0)
			require.LessOrEqual(t, v.Wheel, 360.0)
			require.GreaterOrEqual(t, v.Z, -120.0-2.3*12)
			require.LessOrEqual(t, v.Z, 120.0+2.3*12)
		}
	}
}

func TestPedestrianBouncesAtSidewalkEnd(t *testing.T) {
	s := newTestState(t)
	s.Pedestrians = []Pedestrian{{X: -4.8, Z: 109.5, Dir: 1, Speed: 0.1}}

	s.Step(tick)
	p := s.Pedestrians[0]
	assert.Equal(t, 110.0, p.Z)
	assert.Equal(t, -1.0, p.Dir)

	s.Step(tick)
	p = s.Pedestrians[0]
	assert.Equal(t, -1.0, p.Dir)
	assert.Less(t, p.Z, 110.0)
}

func TestPedestriansStayOnSidewalk(t *testing.T) {
	s := newTestState(t)
	s.Pedestrians[0].Phase = 999.99

	for i := 0; i < 20000; i++ {
		s.Step(tick)
		for _, p := range s.Pedestrians {
			require.GreaterOrEqual(t, p.Z, -110.0)
			require.LessOrEqual(t, p.Z, 110.0)
			require.LessOrEqual(t, p.Phase, 1000.0)
		}
	}
}

func TestSunWrapsToMorning(t *testing.T) {
	s := newTestState(t)
	s.SunAngle = 179.99

	s.Step(tick)
	assert.Equal(t, 40.0, s.SunAngle)

	s.Step(tick)
	assert.InDelta(t, 40.02, s.SunAngle, 1e-9)
}

func TestSunPosition(t *testing.T) {
	pos := SunAt(90, 40)
	assert.InDelta(t, 0, pos.X(), 1e-9)
	assert.InDelta(t, 46, pos.Y(), 1e-9)
	assert.Equal(t, -10.0, pos.Z())
}

func TestToggleWhileRaining(t *testing.T) {
	s := newTestState(t)
	s.Weather.Mode = Rainy
	s.Weather.Intensity = 0.8
	s.Weather.Timer = 3.2

	s.ToggleWeather()

	assert.Equal(t, Sunny, s.Weather.Mode)
	assert.Equal(t, 0.0, s.Weather.Intensity)
	assert.Equal(t, 0.0, s.Weather.Timer)

	s.Step(tick)
	assert.Equal(t, 0.0, s.Weather.Intensity)
	assert.InDelta(t, tick, s.Weather.Timer, 1e-12)
}

func TestToggleIntoRainRegeneratesDrops(t *testing.T) {
	s := newTestState(t)
	s.Weather.Drops = nil

	s.ToggleWeather()

	assert.Equal(t, Rainy, s.Weather.Mode)
	assert.Len(t, s.Weather.Drops, 500)
}

func TestSameSeedSameEvolution(t *testing.T) {
	a := NewState(config.DefaultConfig(), 9)
	b := NewState(config.DefaultConfig(), 9)

	for i := 0; i < 1500; i++ {
		a.Step(tick)
		b.Step(tick)
	}

	assert.Equal(t, a.Pedestrians, b.Pedestrians)
	assert.Equal(t, a.Vehicles, b.Vehicles)
	assert.Equal(t, a.Weather, b.Weather)
}

func TestResetRestoresRoster(t *testing.T) {
	s := newTestState(t)
	initial := append([]Pedestrian(nil), s.Pedestrians...)

	for i := 0; i < 300; i++ {
		s.Step(tick)
	}
	s.ToggleWeather()
	s.Reset()

	assert.Equal(t, initial, s.Pedestrians)
	assert.Equal(t, Sunny, s.Weather.Mode)
	assert.Equal(t, 45.0, s.SunAngle)
	assert.Equal(t, int64(42), s.Seed())
}

func TestArchetypeString(t *testing.T) {
	assert.Equal(t, "sedan", Sedan.String())
	assert.Equal(t, "truck", Truck.String())
	assert.Equal(t, "rainy", Rainy.String())
}
