package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityscape/pkg/config"
)

func newOrbit() *Orbit {
	return NewOrbit(config.DefaultConfig().Camera)
}

func TestInitialPose(t *testing.T) {
	o := newOrbit()
	assert.Equal(t, 0.0, o.Yaw)
	assert.Equal(t, 18.0, o.Pitch)
	assert.Equal(t, 28.0, o.Distance)
	assert.Equal(t, mgl64.Vec3{0, 2.5, 0}, o.Target)

	// positive pitch keeps the eye above the target
	assert.Greater(t, o.Eye().Y(), o.Target.Y())
}

func TestDragRequiresActiveDrag(t *testing.T) {
	o := newOrbit()
	o.Drag(100, 100)
	assert.Equal(t, 0.0, o.Yaw)

	o.BeginDrag(10, 10)
	o.Drag(20, 15)
	assert.InDelta(t, 4.0, o.Yaw, 1e-9)
	assert.InDelta(t, 19.5, o.Pitch, 1e-9)

	o.EndDrag()
	o.Drag(500, 500)
	assert.InDelta(t, 4.0, o.Yaw, 1e-9)
	assert.False(t, o.Dragging())
}

func TestPitchAndDistanceStayClamped(t *testing.T) {
	o := newOrbit()
	rng := rand.New(rand.NewSource(1))

	o.BeginDrag(0, 0)
	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			o.Drag(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		case 1:
			o.Scroll(float64(rng.Intn(21) - 10))
		default:
			o.Zoom(rng.Float64()*400 - 200)
		}
		require.GreaterOrEqual(t, o.Pitch, -80.0)
		require.LessOrEqual(t, o.Pitch, 80.0)
		require.GreaterOrEqual(t, o.Distance, 5.0)
		require.LessOrEqual(t, o.Distance, 150.0)
	}
}

func TestScrollDirection(t *testing.T) {
	o := newOrbit()
	o.Scroll(1)
	assert.Equal(t, 27.0, o.Distance)
	o.Scroll(-3)
	assert.Equal(t, 30.0, o.Distance)
}

func TestResetIsExact(t *testing.T) {
	o := newOrbit()
	o.BeginDrag(0, 0)
	o.Drag(333, -77)
	o.Zoom(40)
	o.Rotate(25)
	o.Move(Forward)
	o.Move(Left)

	o.Reset()

	assert.Equal(t, 0.0, o.Yaw)
	assert.Equal(t, 18.0, o.Pitch)
	assert.Equal(t, 28.0, o.Distance)
	assert.Equal(t, mgl64.Vec3{0, 2.5, 0}, o.Target)
	assert.False(t, o.Dragging())
}

func TestMoveStaysLevel(t *testing.T) {
	o := newOrbit()

	o.Move(Forward)
	assert.InDelta(t, 0, o.Target.X(), 1e-9)
	assert.InDelta(t, -0.8, o.Target.Z(), 1e-9)

	o.Move(Right)
	assert.InDelta(t, 0.8, o.Target.X(), 1e-9)

	o.Rotate(90)
	o.Move(Back)
	assert.InDelta(t, 1.6, o.Target.X(), 1e-9)
	assert.InDelta(t, -0.8, o.Target.Z(), 1e-9)
	assert.Equal(t, 2.5, o.Target.Y())
}

func TestEyeDistanceMatches(t *testing.T) {
	o := newOrbit()
	o.Rotate(37)
	o.Zoom(-9)
	assert.InDelta(t, o.Distance, o.Eye().Sub(o.Target).Len(), 1e-9)
}

func TestViewLooksAtTarget(t *testing.T) {
	o := newOrbit()
	v := o.View()
	target := v.Mul4x1(mgl32.Vec4{0, 2.5, 0, 1})

	// the target sits on the view axis in front of the eye
	assert.InDelta(t, 0, target.X(), 1e-4)
	assert.InDelta(t, 0, target.Y(), 1e-4)
	assert.InDelta(t, -28, target.Z(), 1e-3)
}

func TestPerspectiveHandlesZeroHeight(t *testing.T) {
	o := newOrbit()
	assert.Equal(t, float32(1000), Aspect(1000, 0))
	assert.InDelta(t, 1000.0/700.0, Aspect(1000, 700), 1e-6)

	p := o.Perspective(800, 0)
	assert.False(t, p.ApproxEqual(mgl32.Mat4{}))
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(60), 800, 0.1, 500), p)
}
