package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cityscape/pkg/camera"
	"cityscape/pkg/control"
	"cityscape/pkg/world"
)

var keyBindings = map[glfw.Key]control.Command{
	glfw.KeyW:      control.ZoomIn,
	glfw.KeyS:      control.ZoomOut,
	glfw.KeyA:      control.RotateLeft,
	glfw.KeyD:      control.RotateRight,
	glfw.KeyR:      control.ResetCamera,
	glfw.KeyN:      control.ResetScene,
	glfw.KeySpace:  control.ToggleWeather,
	glfw.KeyEscape: control.Quit,
	glfw.KeyUp:     control.MoveForward,
	glfw.KeyDown:   control.MoveBack,
	glfw.KeyLeft:   control.MoveLeft,
	glfw.KeyRight:  control.MoveRight,
}

// InputHandler routes window events to the camera and the scene
type InputHandler struct {
	window *glfw.Window
	orbit  *camera.Orbit
	state  *world.State
}

// NewInputHandler installs the keyboard, mouse and scroll callbacks
func NewInputHandler(window *glfw.Window, orbit *camera.Orbit, state *world.State) *InputHandler {
	ih := &InputHandler{
		window: window,
		orbit:  orbit,
		state:  state,
	}

	window.SetKeyCallback(ih.onKey)
	window.SetMouseButtonCallback(ih.onMouseButton)
	window.SetCursorPosCallback(ih.onCursor)
	window.SetScrollCallback(ih.onScroll)

	return ih
}

func (ih *InputHandler) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	cmd, ok := keyBindings[key]
	if !ok {
		return
	}
	if action == glfw.Release || (action == glfw.Repeat && !cmd.Repeatable()) {
		return
	}
	if !control.Apply(cmd, ih.orbit, ih.state) {
		w.SetShouldClose(true)
	}
}

func (ih *InputHandler) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		ih.orbit.BeginDrag(x, y)
	case glfw.Release:
		ih.orbit.EndDrag()
	}
}

func (ih *InputHandler) onCursor(_ *glfw.Window, x, y float64) {
	if ih.orbit.Dragging() {
		ih.orbit.Drag(x, y)
	}
}

func (ih *InputHandler) onScroll(_ *glfw.Window, _, yoffset float64) {
	ih.orbit.Scroll(yoffset)
}
