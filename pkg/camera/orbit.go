package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"cityscape/internal/util"
	"cityscape/pkg/config"
)

// Direction is a level movement of the look-at target
type Direction int

// Movement directions relative to the current yaw
const (
	Forward Direction = iota
	Back
	Left
	Right
)

// Orbit is a camera circling a movable target. The eye sits at the target
// plus a spherical offset given by yaw, pitch (degrees) and distance.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   mgl64.Vec3

	cfg      config.CameraConfig
	dragging bool
	lastX    float64
	lastY    float64
}

// NewOrbit creates a camera at the configured initial pose
func NewOrbit(cfg config.CameraConfig) *Orbit {
	o := &Orbit{cfg: cfg}
	o.Reset()
	return o
}

// Reset restores the initial pose and target
func (o *Orbit) Reset() {
	o.Yaw = o.cfg.Yaw
	o.Pitch = util.Clamp(o.cfg.Pitch, -o.cfg.PitchLimit, o.cfg.PitchLimit)
	o.Distance = util.Clamp(o.cfg.Distance, o.cfg.MinDistance, o.cfg.MaxDistance)
	o.Target = mgl64.Vec3(o.cfg.Target)
	o.dragging = false
}

// BeginDrag starts a pointer drag at the given window position
func (o *Orbit) BeginDrag(x, y float64) {
	o.dragging = true
	o.lastX = x
	o.lastY = y
}

// Drag turns the camera by the pointer motion since the last event.
// It does nothing unless a drag is active.
func (o *Orbit) Drag(x, y float64) {
	if !o.dragging {
		return
	}
	o.Yaw += (x - o.lastX) * o.cfg.YawPerPixel
	o.Pitch = util.Clamp(o.Pitch+(y-o.lastY)*o.cfg.PitchPerPixel, -o.cfg.PitchLimit, o.cfg.PitchLimit)
	o.lastX = x
	o.lastY = y
}

// EndDrag stops the pointer drag
func (o *Orbit) EndDrag() {
	o.dragging = false
}

// Dragging reports whether a pointer drag is active
func (o *Orbit) Dragging() bool {
	return o.dragging
}

// Scroll zooms by wheel steps. Positive steps (wheel up) move closer.
func (o *Orbit) Scroll(steps float64) {
	o.Zoom(-steps * o.cfg.ZoomStep)
}

// Zoom changes the distance additively within the configured range
func (o *Orbit) Zoom(delta float64) {
	o.Distance = util.Clamp(o.Distance+delta, o.cfg.MinDistance, o.cfg.MaxDistance)
}

// Rotate turns the camera around the target by deg degrees of yaw
func (o *Orbit) Rotate(deg float64) {
	o.Yaw += deg
}

// Move translates the target along the ground plane. Forward and strafe
// come from yaw only so the target height never changes.
func (o *Orbit) Move(dir Direction) {
	yaw := mgl64.DegToRad(o.Yaw)
	speed := o.cfg.MoveSpeed
	forward := mgl64.Vec3{-math.Sin(yaw) * speed, 0, -math.Cos(yaw) * speed}
	strafe := mgl64.Vec3{math.Cos(yaw) * speed, 0, -math.Sin(yaw) * speed}

	switch dir {
	case Forward:
		o.Target = o.Target.Add(forward)
	case Back:
		o.Target = o.Target.Sub(forward)
	case Left:
		o.Target = o.Target.Sub(strafe)
	case Right:
		o.Target = o.Target.Add(strafe)
	}
}

// Eye returns the camera position in world space
func (o *Orbit) Eye() mgl64.Vec3 {
	yaw := mgl64.DegToRad(o.Yaw)
	pitch := mgl64.DegToRad(o.Pitch)
	offset := mgl64.Vec3{
		o.Distance * math.Cos(pitch) * math.Sin(yaw),
		o.Distance * math.Sin(pitch),
		o.Distance * math.Cos(pitch) * math.Cos(yaw),
	}
	return o.Target.Add(offset)
}

// View returns the look-at matrix from the eye to the target with +y up
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(vec32(o.Eye()), vec32(o.Target), mgl32.Vec3{0, 1, 0})
}

// Perspective returns the projection for a framebuffer of the given size.
// A zero height is treated as 1.
func (o *Orbit) Perspective(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(
		mgl32.DegToRad(float32(o.cfg.FovY)),
		Aspect(width, height),
		float32(o.cfg.Near),
		float32(o.cfg.Far),
	)
}

// Aspect returns width/height, substituting 1 for a non-positive height
func Aspect(width, height int) float32 {
	if height <= 0 {
		height = 1
	}
	return float32(width) / float32(height)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
