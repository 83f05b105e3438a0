package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"cityscape/pkg/world"
)

const (
	windowPad     = 0.15
	windowStorey  = 2.2 // building height per window row
	faceWidthUse  = 0.92
	faceHeightUse = 0.62

	// Heavier rain than this hides contact shadows entirely
	ShadowCutoff = 0.7
	shadowLift   = 0.005
	shadowReach  = 0.05
)

// WindowPanel lays out a rows×cols grid of windows on a face of size
// faceW×faceH centered at (0, sillY) in the face plane (z=0, facing +z).
// Each window is a frame, a glass pane and a sill. Rows step downward by
// the window height plus padding.
func WindowPanel(rows, cols int, faceW, faceH, sillY float32, mode world.Mode) []Part {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	glass := PaletteFor(mode).Glass

	winW := (faceW - float32(cols+1)*windowPad) / float32(cols)
	winH := (faceH - float32(rows+1)*windowPad) / float32(rows)
	if winW <= 0 || winH <= 0 {
		return nil
	}

	parts := make([]Part, 0, rows*cols*3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := -faceW/2 + windowPad + float32(c)*(winW+windowPad) + winW/2
			cy := sillY + faceH/2 - windowPad - float32(r)*(winH+windowPad) - winH/2

			parts = append(parts,
				Part{
					Solid:    UnitCube(),
					Model:    chain(translate(cx, cy, -0.1), scale(winW, winH, 0.15)),
					Material: frameMaterial,
				},
				Part{
					Solid:    UnitCube(),
					Model:    chain(translate(cx, cy, 0.02), scale(winW*0.85, winH*0.85, 0.01)),
					Material: glass,
				},
				Part{
					Solid:    UnitCube(),
					Model:    chain(translate(cx, cy-winH/2-0.02, 0.05), scale(winW*1.1, 0.04, 0.1)),
					Material: sillMaterial,
				},
			)
		}
	}
	return parts
}

// WindowRows is the number of window rows a building of height h gets
func WindowRows(h float64) int {
	return int(h / windowStorey)
}

// Building emits the block, windows on all four faces, a door with a knob
// on the front (-z) face and a roof slab.
func Building(b world.Building, mode world.Mode) []Part {
	pal := PaletteFor(mode)
	x, z := float32(b.X), float32(b.Z)
	w, d, h := float32(b.W), float32(b.D), float32(b.H)
	rows := WindowRows(b.H)

	parts := []Part{Box(mgl32.Vec3{x, h / 2, z}, mgl32.Vec3{w, h, d}, pal.Building)}

	front := chain(translate(x, h/2, z-d/2), rotateY(180))
	parts = append(parts, Place(front, WindowPanel(rows, 3, w*faceWidthUse, h*faceHeightUse, 0, mode))...)

	door := chain(front, translate(0, -h/2+1.2, 0.1), scale(0.9, 1.8, 0.15))
	parts = append(parts,
		Part{Solid: UnitCube(), Model: door, Material: doorMaterial},
		Part{Solid: SphereSolid(0.05, 8, 8), Model: chain(door, translate(0.35, 0, 0.5)), Material: knobMaterial},
	)

	back := translate(x, h/2, z+d/2)
	parts = append(parts, Place(back, WindowPanel(rows, 3, w*faceWidthUse, h*faceHeightUse, 0, mode))...)

	left := chain(translate(x-w/2, h/2, z), rotateY(-90))
	parts = append(parts, Place(left, WindowPanel(rows, 2, d*faceWidthUse, h*faceHeightUse, 0, mode))...)

	right := chain(translate(x+w/2, h/2, z), rotateY(90))
	parts = append(parts, Place(right, WindowPanel(rows, 2, d*faceWidthUse, h*faceHeightUse, 0, mode))...)

	parts = append(parts, Box(mgl32.Vec3{x, h + 0.25, z}, mgl32.Vec3{w * 1.02, 0.4, d * 1.02}, pal.Roof))
	return parts
}

// Shadow returns the contact shadow of a building: its footprint on the
// ground pushed away from the sun by a small fraction of the horizontal
// sun-to-building vector. ok is false when rain hides shadows.
func Shadow(b world.Building, sun mgl64.Vec3, mode world.Mode, intensity float64) (q Quad, ok bool) {
	alpha := float32(0.3)
	if mode == world.Rainy {
		if intensity > ShadowCutoff {
			return Quad{}, false
		}
		alpha = 0.15 * float32(1-intensity)
	}

	ox := float32(-(b.X - sun.X()) * shadowReach)
	oz := float32(-(b.Z - sun.Z()) * shadowReach)
	x, z := float32(b.X)+ox, float32(b.Z)+oz
	hw, hd := float32(b.W)/2, float32(b.D)/2

	return groundQuad(x-hw, z-hd, x+hw, z+hd, shadowLift, Flat(Color{0, 0, 0, alpha})), true
}
