package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SolidKind enumerates the solid shapes a renderer must be able to draw
type SolidKind int

// Solid kinds
const (
	Cube SolidKind = iota
	Sphere
	Cone
	Cylinder
	Torus
)

// String returns the kind name
func (k SolidKind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case Torus:
		return "torus"
	default:
		return "unknown"
	}
}

// Solid is a closed shape in its own local frame. Cones and cylinders
// start at z=0 and extend toward +z. A torus lies in the xy plane around
// the z axis. Solid is comparable so renderers can cache meshes by value.
type Solid struct {
	Kind   SolidKind
	Radius float32 // sphere, cone base, cylinder base, torus ring
	Top    float32 // cylinder top radius
	Tube   float32 // torus tube radius
	Height float32 // cone and cylinder
	Slices int
	Stacks int
}

// UnitCube is a cube of side 1 centered on the origin
func UnitCube() Solid {
	return Solid{Kind: Cube}
}

// SphereSolid is a sphere centered on the origin
func SphereSolid(radius float32, slices, stacks int) Solid {
	return Solid{Kind: Sphere, Radius: radius, Slices: slices, Stacks: stacks}
}

// ConeSolid is a cone with a closed base
func ConeSolid(base, height float32, slices, stacks int) Solid {
	return Solid{Kind: Cone, Radius: base, Height: height, Slices: slices, Stacks: stacks}
}

// CylinderSolid is an open tapered tube
func CylinderSolid(base, top, height float32, slices int) Solid {
	return Solid{Kind: Cylinder, Radius: base, Top: top, Height: height, Slices: slices, Stacks: 1}
}

// TorusSolid is a ring of the given tube radius around a circle of radius ring
func TorusSolid(tube, ring float32, sides, rings int) Solid {
	return Solid{Kind: Torus, Radius: ring, Tube: tube, Slices: rings, Stacks: sides}
}

// Mesh is a flat triangle list. Normals has one entry per position.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
}

// Triangles returns the number of triangles in the mesh
func (m Mesh) Triangles() int {
	return len(m.Positions) / 3
}

func (m *Mesh) tri(a, b, c, na, nb, nc mgl32.Vec3) {
	m.Positions = append(m.Positions, a, b, c)
	m.Normals = append(m.Normals, na, nb, nc)
}

func (m *Mesh) quad(a, b, c, d, na, nb, nc, nd mgl32.Vec3) {
	m.tri(a, b, c, na, nb, nc)
	m.tri(a, c, d, na, nc, nd)
}

// Tessellate turns a solid into triangles with unit normals
func Tessellate(s Solid) Mesh {
	switch s.Kind {
	case Sphere:
		return sphereMesh(s.Radius, atLeast(s.Slices, 3), atLeast(s.Stacks, 2))
	case Cone:
		return coneMesh(s.Radius, s.Height, atLeast(s.Slices, 3), atLeast(s.Stacks, 1))
	case Cylinder:
		return cylinderMesh(s.Radius, s.Top, s.Height, atLeast(s.Slices, 3), atLeast(s.Stacks, 1))
	case Torus:
		return torusMesh(s.Tube, s.Radius, atLeast(s.Stacks, 3), atLeast(s.Slices, 3))
	default:
		return cubeMesh()
	}
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func cubeMesh() Mesh {
	var m Mesh
	faces := []struct {
		n, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
	}
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		a := c.Sub(u).Sub(v)
		b := c.Add(u).Sub(v)
		cc := c.Add(u).Add(v)
		d := c.Sub(u).Add(v)
		m.quad(a, b, cc, d, f.n, f.n, f.n, f.n)
	}
	return m
}

func sphereMesh(r float32, slices, stacks int) Mesh {
	var m Mesh
	point := func(i, j int) mgl32.Vec3 {
		theta := math.Pi * float64(j) / float64(stacks)
		phi := 2 * math.Pi * float64(i) / float64(slices)
		return mgl32.Vec3{
			float32(math.Sin(theta) * math.Cos(phi)),
			float32(math.Sin(theta) * math.Sin(phi)),
			float32(math.Cos(theta)),
		}
	}
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			n00 := point(i, j)
			n10 := point(i+1, j)
			n11 := point(i+1, j+1)
			n01 := point(i, j+1)
			m.quad(n00.Mul(r), n01.Mul(r), n11.Mul(r), n10.Mul(r), n00, n01, n11, n10)
		}
	}
	return m
}

// ring returns the unit direction of slice i around the z axis
func ring(i, slices int) (float32, float32) {
	a := 2 * math.Pi * float64(i) / float64(slices)
	return float32(math.Cos(a)), float32(math.Sin(a))
}

func cylinderMesh(base, top, height float32, slices, stacks int) Mesh {
	var m Mesh
	if height <= 0 {
		return m
	}
	slope := (base - top) / height
	for j := 0; j < stacks; j++ {
		t0 := float32(j) / float32(stacks)
		t1 := float32(j+1) / float32(stacks)
		r0 := base + (top-base)*t0
		r1 := base + (top-base)*t1
		for i := 0; i < slices; i++ {
			c0, s0 := ring(i, slices)
			c1, s1 := ring(i+1, slices)
			n0 := mgl32.Vec3{c0, s0, slope}.Normalize()
			n1 := mgl32.Vec3{c1, s1, slope}.Normalize()
			m.quad(
				mgl32.Vec3{c0 * r0, s0 * r0, t0 * height},
				mgl32.Vec3{c1 * r0, s1 * r0, t0 * height},
				mgl32.Vec3{c1 * r1, s1 * r1, t1 * height},
				mgl32.Vec3{c0 * r1, s0 * r1, t1 * height},
				n0, n1, n1, n0,
			)
		}
	}
	return m
}

func coneMesh(base, height float32, slices, stacks int) Mesh {
	m := cylinderMesh(base, 0, height, slices, stacks)
	down := mgl32.Vec3{0, 0, -1}
	center := mgl32.Vec3{0, 0, 0}
	for i := 0; i < slices; i++ {
		c0, s0 := ring(i, slices)
		c1, s1 := ring(i+1, slices)
		m.tri(center, mgl32.Vec3{c1 * base, s1 * base, 0}, mgl32.Vec3{c0 * base, s0 * base, 0}, down, down, down)
	}
	return m
}

func torusMesh(tube, ringRadius float32, sides, rings int) Mesh {
	var m Mesh
	point := func(i, j int) (mgl32.Vec3, mgl32.Vec3) {
		cu, su := ring(i, rings)
		cv, sv := ring(j, sides)
		n := mgl32.Vec3{cu * cv, su * cv, sv}
		p := mgl32.Vec3{cu * ringRadius, su * ringRadius, 0}.Add(n.Mul(tube))
		return p, n
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			p00, n00 := point(i, j)
			p10, n10 := point(i+1, j)
			p11, n11 := point(i+1, j+1)
			p01, n01 := point(i, j+1)
			m.quad(p00, p10, p11, p01, n00, n10, n11, n01)
		}
	}
	return m
}
