package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityscape/pkg/world"
)

func origin(p Part) mgl32.Vec3 {
	return p.Model.Col(3).Vec3()
}

func TestBoxTransform(t *testing.T) {
	p := Box(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, Surface(RGB(1, 0, 0), 10))

	corner := p.Model.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1})
	assert.InDelta(t, 3, corner.X(), 1e-6)
	assert.InDelta(t, 4.5, corner.Y(), 1e-6)
	assert.InDelta(t, 6, corner.Z(), 1e-6)
	assert.Equal(t, Cube, p.Solid.Kind)
}

func TestSurfaceMaterial(t *testing.T) {
	m := Surface(RGB(0.5, 1, 0.25), 30)
	assert.InDelta(t, 0.1, m.Ambient.R, 1e-6)
	assert.InDelta(t, 0.2, m.Ambient.G, 1e-6)
	assert.Equal(t, float32(0.8), m.Specular.R)
	assert.Equal(t, float32(30), m.Shininess)
	assert.False(t, m.Unlit)
	assert.True(t, Flat(RGB(1, 1, 1)).Unlit)
}

func TestWindowPanelGrid(t *testing.T) {
	parts := WindowPanel(3, 2, 5, 7, 0, world.Sunny)
	require.Len(t, parts, 3*2*3)

	winW := float32((5 - 3*0.15) / 2)
	winH := float32((7 - 4*0.15) / 3)

	frames := []Part{}
	for i := 0; i < len(parts); i += 3 {
		frames = append(frames, parts[i])
	}

	// first window hugs the top-left corner of the face
	first := origin(frames[0])
	assert.InDelta(t, -2.5+0.15+winW/2, first.X(), 1e-5)
	assert.InDelta(t, 3.5-0.15-winH/2, first.Y(), 1e-5)

	// columns step by width+pad, rows by height+pad
	assert.InDelta(t, winW+0.15, origin(frames[1]).X()-first.X(), 1e-5)
	assert.InDelta(t, winH+0.15, first.Y()-origin(frames[2]).Y(), 1e-5)

	// the bottom row stays inside the face
	last := origin(frames[len(frames)-1])
	assert.InDelta(t, -3.5+0.15+winH/2, last.Y(), 1e-5)
}

func TestWindowPanelGlassFollowsWeather(t *testing.T) {
	sunny := WindowPanel(1, 1, 2, 2, 0, world.Sunny)[1].Material
	rainy := WindowPanel(1, 1, 2, 2, 0, world.Rainy)[1].Material

	assert.Equal(t, float32(1.0), sunny.Diffuse.B)
	assert.Equal(t, float32(0.8), rainy.Diffuse.B)
	assert.Greater(t, sunny.Diffuse.G, rainy.Diffuse.G)
	assert.Equal(t, RGB(0.1, 0.12, 0.15), rainy.Emission)
}

func TestWindowPanelDegenerate(t *testing.T) {
	assert.Nil(t, WindowPanel(0, 3, 5, 5, 0, world.Sunny))
	assert.Nil(t, WindowPanel(2, 3, 0.2, 5, 0, world.Sunny))
}

func TestBuildingPartCount(t *testing.T) {
	b := world.Building{X: -9, Z: -50, W: 6, D: 8, H: 12}
	rows := WindowRows(b.H)
	require.Equal(t, 5, rows)

	parts := Building(b, world.Sunny)
	windows := rows * (3 + 3 + 2 + 2) * 3
	// block, door, knob, roof
	assert.Len(t, parts, windows+4)

	roof := parts[len(parts)-1]
	assert.InDelta(t, 12.25, origin(roof).Y(), 1e-5)
	assert.Equal(t, PaletteFor(world.Sunny).Roof, roof.Material)
}

func TestShadowOffsetAwayFromSun(t *testing.T) {
	b := world.Building{X: 9, Z: 10, W: 6, D: 8, H: 7}
	sun := mgl64.Vec3{29, 40, -10}

	q, ok := Shadow(b, sun, world.Sunny, 0)
	require.True(t, ok)

	// offset is -(B - sun) * 0.05 = (1, -1)
	assert.InDelta(t, 9+1-3, q.Corners[0].X(), 1e-5)
	assert.InDelta(t, 10-1-4, q.Corners[0].Z(), 1e-5)
	assert.InDelta(t, 9+1+3, q.Corners[2].X(), 1e-5)
	assert.InDelta(t, 0.005, q.Corners[0].Y(), 1e-7)
	assert.True(t, q.Material.Unlit)
	assert.InDelta(t, 0.3, q.Material.Diffuse.A, 1e-6)
}

func TestShadowFadesAndDisappearsInRain(t *testing.T) {
	b := world.Building{X: -9, Z: 0, W: 6, D: 8, H: 7}
	sun := mgl64.Vec3{0, 40, -10}

	q, ok := Shadow(b, sun, world.Rainy, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.075, q.Material.Diffuse.A, 1e-6)

	_, ok = Shadow(b, sun, world.Rainy, 0.71)
	assert.False(t, ok)

	// a sunny sky keeps shadows even while the last rain fades out
	_, ok = Shadow(b, sun, world.Sunny, 0.9)
	assert.True(t, ok)
}

func TestGrassPatchIsStableAndInside(t *testing.T) {
	g := world.GrassStrip{X: -11, Z: 0, W: 6, D: 220}
	base, blades := GrassPatch(g, world.Sunny, 7)
	_, again := GrassPatch(g, world.Sunny, 7)

	assert.Equal(t, blades, again)
	require.Len(t, blades, BladesPerPatch)
	assert.InDelta(t, -14, base.Corners[0].X(), 1e-6)
	assert.InDelta(t, 0.001, base.Corners[0].Y(), 1e-7)

	shades := PaletteFor(world.Sunny).Blades
	for _, l := range blades {
		assert.GreaterOrEqual(t, l.From.X(), float32(-14))
		assert.Less(t, l.From.X(), float32(-8))
		assert.Equal(t, float32(0), l.From.Y())
		assert.GreaterOrEqual(t, l.To.Y(), float32(0.15))
		assert.Less(t, l.To.Y(), float32(0.3))
		assert.Contains(t, shades[:], l.Color)
	}

	_, rainy := GrassPatch(g, world.Rainy, 7)
	assert.Equal(t, blades[0].From, rainy[0].From)
	assert.NotEqual(t, blades[0].Color, rainy[0].Color)
}

func TestTreeLayers(t *testing.T) {
	parts := Tree(16, -80, 1.2, world.Rainy)
	require.Len(t, parts, 4)

	assert.Equal(t, Cylinder, parts[0].Solid.Kind)
	assert.InDelta(t, 0.216, parts[0].Solid.Radius, 1e-6)
	assert.InDelta(t, 1.92, parts[0].Solid.Height, 1e-6)

	for i := 1; i < 4; i++ {
		assert.Equal(t, Cone, parts[i].Solid.Kind)
		assert.Equal(t, PaletteFor(world.Rainy).Leaves, parts[i].Material)
	}
	assert.Greater(t, parts[1].Solid.Radius, parts[2].Solid.Radius)
	assert.Greater(t, parts[2].Solid.Radius, parts[3].Solid.Radius)
	assert.InDelta(t, 1.6+2*0.7*1.2, origin(parts[3]).Y(), 1e-5)

	// the trunk grows upward once rotated into place
	tip := parts[0].Model.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assert.Greater(t, tip.Y(), origin(parts[0]).Y())
}

func TestPedestrianSwing(t *testing.T) {
	still := Pedestrian(world.Pedestrian{X: 4.8, Z: 2, Phase: 0}, world.Sunny)
	mid := Pedestrian(world.Pedestrian{X: 4.8, Z: 2, Phase: 0.25}, world.Sunny)
	require.Len(t, still, 6)

	assert.InDelta(t, 4.8-0.09, origin(still[2]).X(), 1e-5)
	assert.InDelta(t, 4.8+0.09, origin(still[3]).X(), 1e-5)

	// legs move toward each other by the same amount
	dl := origin(mid[2]).X() - origin(still[2]).X()
	dr := origin(mid[3]).X() - origin(still[3]).X()
	assert.InDelta(t, -dl, dr, 1e-6)
	assert.NotZero(t, dl)

	// arms tilt in opposite directions
	assert.NotEqual(t, still[4].Model, mid[4].Model)
	leftTip := mid[4].Model.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	rightTip := mid[5].Model.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	assert.InDelta(t, 2-leftTip.Z(), rightTip.Z()-2, 1e-5)
}

func TestVehicleArchetypes(t *testing.T) {
	tests := []struct {
		kind   world.Archetype
		wheels int
		height float32
	}{
		{world.Sedan, 4, 0.3},
		{world.SUV, 4, 0.4},
		{world.Sports, 4, 0.25},
		{world.Truck, 6, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v := world.Vehicle{X: -1.2, Z: 5, Speed: 0.02, Color: world.RGB{R: 0.9, G: 0.1, B: 0.1}, Kind: tt.kind, Wheel: 45}
			parts := Vehicle(v)

			wheels := 0
			for _, p := range parts {
				if p.Solid.Kind == Torus {
					wheels++
					assert.Equal(t, tireMaterial, p.Material)
				}
			}
			assert.Equal(t, tt.wheels, wheels)
			assert.InDelta(t, tt.height, origin(parts[0]).Y(), 0.31)
			assert.InDelta(t, 5, origin(parts[0]).Z(), 0.81)
		})
	}
}

func TestWheelSpinRotatesTire(t *testing.T) {
	a := Vehicle(world.Vehicle{Kind: world.Sedan, Wheel: 0})
	b := Vehicle(world.Vehicle{Kind: world.Sedan, Wheel: 90})

	last := len(a) - 1
	assert.Equal(t, origin(a[last]), origin(b[last]))
	assert.False(t, a[last].Model.ApproxEqual(b[last].Model))
}

func TestUnknownArchetypeFallsBack(t *testing.T) {
	parts := Vehicle(world.Vehicle{Kind: world.Archetype(42)})
	assert.Len(t, parts, len(Vehicle(world.Vehicle{Kind: world.Sedan})))
}

func TestRoadMarkings(t *testing.T) {
	lines := RoadMarkings()
	yellow, white := 0, 0
	for _, l := range lines {
		switch l.Color {
		case centerLineColor:
			yellow++
			assert.Equal(t, float32(0), l.From.X())
		case laneLineColor:
			white++
		}
	}
	assert.Equal(t, 30, yellow)
	assert.Equal(t, 32, white)
}

func TestStreetSurfacesFollowWeather(t *testing.T) {
	assert.NotEqual(t, Road(world.Sunny).Material, Road(world.Rainy).Material)
	assert.Len(t, Sidewalks(world.Sunny), 2)
	assert.InDelta(t, -200, Ground(world.Sunny).Corners[0].X(), 1e-6)
}

func TestRainStreaks(t *testing.T) {
	drops := []world.Raindrop{{X: 10, Z: 20}, {X: -3, Z: -50}}

	assert.Nil(t, RainStreaks(drops, 0))

	lines := RainStreaks(drops, 0.5)
	require.Len(t, lines, 2)
	assert.InDelta(t, 0.3, lines[0].Color.A, 1e-6)
	assert.InDelta(t, 21, lines[0].From.Y(), 1e-5)
	assert.InDelta(t, 2, lines[0].From.Y()-lines[0].To.Y(), 1e-5)
	assert.InDelta(t, 0.5, lines[0].From.Z()-lines[0].To.Z(), 1e-5)
	// fmod keeps the sign of the dividend
	assert.InDelta(t, 20, lines[1].From.Y(), 1e-5)
}

func TestSunDisc(t *testing.T) {
	parts := SunDisc(mgl32.Vec3{28, 34, -10})
	require.Len(t, parts, 2)
	assert.True(t, parts[0].Material.Unlit)
	assert.Equal(t, float32(1.3), parts[0].Solid.Radius)
	assert.Equal(t, RGB(0.6, 0.5, 0.3), parts[1].Material.Emission)
	assert.Equal(t, mgl32.Vec3{28, 34, -10}, origin(parts[1]))
}
