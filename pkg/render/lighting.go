package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"cityscape/pkg/geometry"
	"cityscape/pkg/world"
)

// Atmosphere is the sky color plus the light colors of one kind of weather
type Atmosphere struct {
	Sky     geometry.Color
	Diffuse geometry.Color
	Ambient geometry.Color
	Global  geometry.Color
}

var (
	sunnyAtmosphere = Atmosphere{
		Sky:     geometry.RGB(0.53, 0.81, 0.98),
		Diffuse: geometry.RGB(1.0, 0.88, 0.55),
		Ambient: geometry.RGB(0.28, 0.23, 0.15),
		Global:  geometry.RGB(0.22, 0.22, 0.22),
	}
	rainyAtmosphere = Atmosphere{
		Sky:     geometry.RGB(0.4, 0.4, 0.5),
		Diffuse: geometry.RGB(0.4, 0.4, 0.5),
		Ambient: geometry.RGB(0.15, 0.15, 0.2),
		Global:  geometry.RGB(0.1, 0.1, 0.15),
	}
)

// AtmosphereFor picks the sky by weather mode and eases the light colors
// from clear toward overcast as the rain intensity rises. A sunny sky is
// always clear.
func AtmosphereFor(w world.Weather) Atmosphere {
	if w.Mode != world.Rainy {
		return sunnyAtmosphere
	}
	t := float32(w.Intensity)
	return Atmosphere{
		Sky:     rainyAtmosphere.Sky,
		Diffuse: mix(sunnyAtmosphere.Diffuse, rainyAtmosphere.Diffuse, t),
		Ambient: mix(sunnyAtmosphere.Ambient, rainyAtmosphere.Ambient, t),
		Global:  mix(sunnyAtmosphere.Global, rainyAtmosphere.Global, t),
	}
}

// LightFor places the light at the sun with the weather's colors
func LightFor(w world.Weather, sun mgl64.Vec3) Light {
	a := AtmosphereFor(w)
	return Light{
		Position: mgl32.Vec4{float32(sun.X()), float32(sun.Y()), float32(sun.Z()), 1},
		Diffuse:  a.Diffuse,
		Ambient:  a.Ambient,
		Global:   a.Global,
	}
}

// SunVisible reports whether the sun disc is drawn. It fades out once the
// rain is half way in.
func SunVisible(w world.Weather) bool {
	return w.Mode == world.Sunny || w.Intensity < 0.5
}

func mix(a, b geometry.Color, t float32) geometry.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return geometry.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
