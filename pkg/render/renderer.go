package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"cityscape/pkg/geometry"
)

// Light is the single positional light of the scene
type Light struct {
	Position mgl32.Vec4
	Diffuse  geometry.Color
	Ambient  geometry.Color
	Global   geometry.Color // scene-wide ambient term
}

// Pass groups draw calls that share lighting, blending and line width
type Pass struct {
	Name      string
	Lit       bool
	Blend     bool
	LineWidth float32
}

// Renderer is the drawing backend the composer submits a frame to.
// Parts and quads with an unlit material are drawn flat even in a lit pass.
type Renderer interface {
	Clear(sky geometry.Color)
	SetLight(light Light)
	BeginPass(pass Pass)
	DrawPart(part geometry.Part)
	DrawQuad(quad geometry.Quad)
	DrawLines(lines []geometry.Line)
	EndPass()
}
