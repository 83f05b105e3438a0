package control

import (
	"cityscape/pkg/camera"
	"cityscape/pkg/world"
)

// Command is a discrete user action on the scene or the camera
type Command int

// Commands bound to keys
const (
	None Command = iota
	ZoomIn
	ZoomOut
	RotateLeft
	RotateRight
	ResetCamera
	ResetScene
	ToggleWeather
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	Quit
)

var commandNames = map[Command]string{
	None:          "none",
	ZoomIn:        "zoom-in",
	ZoomOut:       "zoom-out",
	RotateLeft:    "rotate-left",
	RotateRight:   "rotate-right",
	ResetCamera:   "reset-camera",
	ResetScene:    "reset-scene",
	ToggleWeather: "toggle-weather",
	MoveForward:   "move-forward",
	MoveBack:      "move-back",
	MoveLeft:      "move-left",
	MoveRight:     "move-right",
	Quit:          "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Repeatable reports whether holding the key keeps issuing the command
func (c Command) Repeatable() bool {
	switch c {
	case ResetCamera, ResetScene, ToggleWeather, Quit, None:
		return false
	}
	return true
}

// Apply runs cmd against the camera and scene. It reports false for Quit so
// the caller can close the window.
func Apply(cmd Command, o *camera.Orbit, s *world.State) bool {
	cfg := s.Config().Camera

	switch cmd {
	case ZoomIn:
		o.Zoom(-cfg.ZoomStep)
	case ZoomOut:
		o.Zoom(cfg.ZoomStep)
	case RotateLeft:
		o.Rotate(-cfg.RotateStep)
	case RotateRight:
		o.Rotate(cfg.RotateStep)
	case ResetCamera:
		o.Reset()
	case ResetScene:
		s.Reset()
	case ToggleWeather:
		s.ToggleWeather()
	case MoveForward:
		o.Move(camera.Forward)
	case MoveBack:
		o.Move(camera.Back)
	case MoveLeft:
		o.Move(camera.Left)
	case MoveRight:
		o.Move(camera.Right)
	case Quit:
		return false
	}
	return true
}
