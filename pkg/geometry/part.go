package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Part is one solid placed in the world with its own surface
type Part struct {
	Solid    Solid
	Model    mgl32.Mat4
	Material Material
}

// Quad is a flat four-cornered polygon given in world space
type Quad struct {
	Corners  [4]mgl32.Vec3
	Normal   mgl32.Vec3
	Material Material
}

// Line is a colored segment in world space
type Line struct {
	From, To mgl32.Vec3
	Color    Color
}

var up = mgl32.Vec3{0, 1, 0}

// Box places a unit cube at center, stretched by size along each axis
func Box(center, size mgl32.Vec3, m Material) Part {
	return Part{
		Solid:    UnitCube(),
		Model:    mgl32.Translate3D(center.X(), center.Y(), center.Z()).Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z())),
		Material: m,
	}
}

// Place returns the parts with base applied in front of their own transforms
func Place(base mgl32.Mat4, parts []Part) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		p.Model = base.Mul4(p.Model)
		out[i] = p
	}
	return out
}

// groundQuad is an axis-aligned horizontal rectangle at height y
func groundQuad(x0, z0, x1, z1, y float32, m Material) Quad {
	return Quad{
		Corners: [4]mgl32.Vec3{
			{x0, y, z0},
			{x1, y, z0},
			{x1, y, z1},
			{x0, y, z1},
		},
		Normal:   up,
		Material: m,
	}
}

func translate(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

func scale(x, y, z float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, z)
}

func rotateX(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(deg))
}

func rotateY(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

func rotateZ(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(deg))
}

// chain multiplies transforms left to right, like successive glTranslate,
// glRotate and glScale calls.
func chain(ms ...mgl32.Mat4) mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}
