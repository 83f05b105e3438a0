package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cityscape/internal/logger"
	"cityscape/pkg/camera"
	"cityscape/pkg/config"
	"cityscape/pkg/control"
	"cityscape/pkg/render"
	"cityscape/pkg/world"
)

// Engine owns the window and drives the fixed-tick simulation and drawing
type Engine struct {
	window      *glfw.Window
	config      *config.Config
	logger      *logger.Logger
	state       *world.State
	orbit       *camera.Orbit
	composer    *render.Composer
	renderer    *GLRenderer
	input       *InputHandler
	ticker      *control.Ticker
	audioEngine *AudioEngine
	lastUpdate  time.Time
	lastMode    world.Mode
}

// NewEngine creates the window, GL state and scene. seed overrides the
// configured seed when non-zero.
func NewEngine(cfg *config.Config, seed int64, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Window.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	renderer, err := NewGLRenderer(log)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	state := world.NewState(cfg, seed)
	orbit := camera.NewOrbit(cfg.Camera)

	e := &Engine{
		window:   window,
		config:   cfg,
		logger:   log,
		state:    state,
		orbit:    orbit,
		composer: render.NewComposer(),
		renderer: renderer,
		input:    NewInputHandler(window, orbit, state),
		ticker:   control.NewTicker(cfg.TickSeconds(), cfg.Simulation.MaxTicksPerFrame),
		lastMode: state.Weather.Mode,
	}
	log.Infof("Scene seed %d: %d buildings, %d vehicles, %d pedestrians, %d raindrops",
		state.Seed(), len(state.Buildings), len(state.Vehicles), len(state.Pedestrians), len(state.Weather.Drops))

	if cfg.Audio.Enabled {
		audio, err := NewAudioEngine(cfg.Audio, state.Seed(), log)
		if err != nil {
			log.Warnf("Audio disabled: %v", err)
		} else {
			e.audioEngine = audio
		}
	}

	window.SetFramebufferSizeCallback(e.onResize)
	fbWidth, fbHeight := window.GetFramebufferSize()
	e.onResize(window, fbWidth, fbHeight)

	return e, nil
}

// Run starts the main loop and returns once the window is closed
func (e *Engine) Run() {
	e.lastUpdate = time.Now()

	for !e.window.ShouldClose() {
		currentTime := time.Now()
		e.update(currentTime.Sub(e.lastUpdate).Seconds())
		e.lastUpdate = currentTime

		e.render()

		e.window.SwapBuffers()
		glfw.PollEvents()
	}

	e.cleanup()
}

// update runs the simulation ticks owed for the elapsed wall time
func (e *Engine) update(elapsed float64) {
	ticks, dropped := e.ticker.Advance(elapsed)
	if dropped > 0 {
		e.logger.Debugf("Dropped %d ticks after a slow frame (%.4fs carried)", dropped, e.ticker.Pending())
	}
	for i := 0; i < ticks; i++ {
		e.state.Step(e.ticker.Step())
	}

	w := e.state.Weather
	if w.Mode != e.lastMode {
		e.logger.Infof("Weather changed: %s -> %s", e.lastMode, w.Mode)
		e.lastMode = w.Mode
	}
	if e.audioEngine != nil {
		rain := 0.0
		if w.Mode == world.Rainy {
			rain = w.Intensity
		}
		e.audioEngine.SetIntensity(rain)
	}
}

// render draws the current frame
func (e *Engine) render() {
	e.renderer.LoadView(e.orbit.View())
	e.composer.Compose(e.renderer, e.state)
}

func (e *Engine) onResize(_ *glfw.Window, width, height int) {
	if height <= 0 {
		height = 1
	}
	e.renderer.Resize(width, height, e.orbit.Perspective(width, height))
	e.logger.Debugf("Framebuffer resized to %dx%d", width, height)
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if e.audioEngine != nil {
		e.audioEngine.Shutdown()
	}
	e.renderer.Release()
	e.window.Destroy()
	glfw.Terminate()
}
