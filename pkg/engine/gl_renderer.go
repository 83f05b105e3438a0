package engine

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cityscape/internal/logger"
	"cityscape/pkg/geometry"
	"cityscape/pkg/render"
)

// GLRenderer draws composed frames with the fixed-function pipeline.
// Solids are compiled once into display lists.
type GLRenderer struct {
	logger *logger.Logger
	meshes map[geometry.Solid]uint32
	pass   render.Pass
}

var _ render.Renderer = (*GLRenderer)(nil)

// NewGLRenderer initializes GL state. The GL context must be current.
func NewGLRenderer(log *logger.Logger) (*GLRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Infof("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.SMOOTH)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.LINE_SMOOTH)

	return &GLRenderer{
		logger: log,
		meshes: make(map[geometry.Solid]uint32),
	}, nil
}

// Resize sets the viewport and loads the projection matrix
func (r *GLRenderer) Resize(width, height int, projection mgl32.Mat4) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// LoadView replaces the modelview matrix with the camera view
func (r *GLRenderer) LoadView(view mgl32.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])
}

// Clear fills the color and depth buffers
func (r *GLRenderer) Clear(sky geometry.Color) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetLight places LIGHT0 under the current view transform
func (r *GLRenderer) SetLight(l render.Light) {
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &l.Position[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, rgba(l.Diffuse))
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, rgba(l.Diffuse))
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, rgba(l.Ambient))
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, rgba(l.Global))
}

// BeginPass applies the pass state
func (r *GLRenderer) BeginPass(p render.Pass) {
	r.pass = p
	if p.Blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if p.LineWidth > 0 {
		gl.LineWidth(p.LineWidth)
	}
	r.lighting(p.Lit)
}

// DrawPart draws a solid with its model transform
func (r *GLRenderer) DrawPart(p geometry.Part) {
	r.material(p.Material)
	gl.PushMatrix()
	gl.MultMatrixf(&p.Model[0])
	gl.CallList(r.mesh(p.Solid))
	gl.PopMatrix()
}

// DrawQuad draws one flat quad in world space
func (r *GLRenderer) DrawQuad(q geometry.Quad) {
	r.material(q.Material)
	gl.Begin(gl.QUADS)
	gl.Normal3f(q.Normal.X(), q.Normal.Y(), q.Normal.Z())
	for _, c := range q.Corners {
		gl.Vertex3f(c.X(), c.Y(), c.Z())
	}
	gl.End()
}

// DrawLines draws colored segments without lighting
func (r *GLRenderer) DrawLines(lines []geometry.Line) {
	if len(lines) == 0 {
		return
	}
	gl.Disable(gl.LIGHTING)
	gl.Begin(gl.LINES)
	for _, l := range lines {
		gl.Color4f(l.Color.R, l.Color.G, l.Color.B, l.Color.A)
		gl.Vertex3f(l.From.X(), l.From.Y(), l.From.Z())
		gl.Vertex3f(l.To.X(), l.To.Y(), l.To.Z())
	}
	gl.End()
	r.lighting(r.pass.Lit)
}

// EndPass restores the default state between passes
func (r *GLRenderer) EndPass() {
	gl.Disable(gl.BLEND)
	gl.LineWidth(1)
	r.pass = render.Pass{}
}

// Release frees the compiled display lists
func (r *GLRenderer) Release() {
	for s, list := range r.meshes {
		gl.DeleteLists(list, 1)
		delete(r.meshes, s)
	}
}

func (r *GLRenderer) lighting(on bool) {
	if on {
		gl.Enable(gl.LIGHTING)
	} else {
		gl.Disable(gl.LIGHTING)
	}
}

// material switches between lit material properties and a flat color
func (r *GLRenderer) material(m geometry.Material) {
	if !r.pass.Lit || m.Unlit {
		gl.Disable(gl.LIGHTING)
		gl.Color4f(m.Diffuse.R, m.Diffuse.G, m.Diffuse.B, m.Diffuse.A)
		return
	}
	gl.Enable(gl.LIGHTING)
	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT, rgba(m.Ambient))
	gl.Materialfv(gl.FRONT_AND_BACK, gl.DIFFUSE, rgba(m.Diffuse))
	gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, rgba(m.Specular))
	gl.Materialfv(gl.FRONT_AND_BACK, gl.EMISSION, rgba(m.Emission))
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, m.Shininess)
}

// mesh returns the display list for s, compiling it on first use
func (r *GLRenderer) mesh(s geometry.Solid) uint32 {
	if list, ok := r.meshes[s]; ok {
		return list
	}

	m := geometry.Tessellate(s)
	list := gl.GenLists(1)
	gl.NewList(list, gl.COMPILE)
	gl.Begin(gl.TRIANGLES)
	for i, p := range m.Positions {
		n := m.Normals[i]
		gl.Normal3f(n.X(), n.Y(), n.Z())
		gl.Vertex3f(p.X(), p.Y(), p.Z())
	}
	gl.End()
	gl.EndList()

	r.meshes[s] = list
	r.logger.Debugf("compiled %s mesh: %d triangles", s.Kind, m.Triangles())
	return list
}

func rgba(c geometry.Color) *float32 {
	v := [4]float32{c.R, c.G, c.B, c.A}
	return &v[0]
}
