package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Weather    WeatherConfig    `yaml:"weather"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SimulationConfig contains the tick rate and actor motion constants
type SimulationConfig struct {
	TickMillis       int     `yaml:"tick_ms"`
	MaxTicksPerFrame int     `yaml:"max_ticks_per_frame"`
	Seed             int64   `yaml:"seed"` // 0 means random
	CarDistance      float64 `yaml:"car_distance"`
	WheelRotation    float64 `yaml:"wheel_rotation"`
	TrackBound       float64 `yaml:"track_bound"`
	WalkDistance     float64 `yaml:"walk_distance"`
	SidewalkBound    float64 `yaml:"sidewalk_bound"`
	GaitBase         float64 `yaml:"gait_base"`
	GaitSpeed        float64 `yaml:"gait_speed"`
	GaitWrap         float64 `yaml:"gait_wrap"`
	SunStep          float64 `yaml:"sun_step"`
	SunInitial       float64 `yaml:"sun_initial"`
	SunMorning       float64 `yaml:"sun_morning"`
	SunSet           float64 `yaml:"sun_set"`
	SunRadius        float64 `yaml:"sun_radius"`
}

// WeatherConfig contains the weather cycle and rain particle configuration
type WeatherConfig struct {
	CycleSeconds float64 `yaml:"cycle_seconds"`
	EaseRate     float64 `yaml:"ease_rate"`
	Drops        int     `yaml:"drops"`
	FallSpeed    float64 `yaml:"fall_speed"`
	Spread       float64 `yaml:"spread"`
	Floor        float64 `yaml:"floor"`
	Ceiling      float64 `yaml:"ceiling"`
	SpawnRange   float64 `yaml:"spawn_range"`
}

// CameraConfig contains orbit camera configuration
type CameraConfig struct {
	Yaw           float64    `yaml:"yaw"`
	Pitch         float64    `yaml:"pitch"`
	Distance      float64    `yaml:"distance"`
	Target        [3]float64 `yaml:"target"`
	YawPerPixel   float64    `yaml:"yaw_per_pixel"`
	PitchPerPixel float64    `yaml:"pitch_per_pixel"`
	PitchLimit    float64    `yaml:"pitch_limit"`
	MinDistance   float64    `yaml:"min_distance"`
	MaxDistance   float64    `yaml:"max_distance"`
	ZoomStep      float64    `yaml:"zoom_step"`
	RotateStep    float64    `yaml:"rotate_step"`
	MoveSpeed     float64    `yaml:"move_speed"`
	FovY          float64    `yaml:"fov_y"`
	Near          float64    `yaml:"near"`
	Far           float64    `yaml:"far"`
}

// AudioConfig contains audio-related configuration
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means console only
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1000,
			Height:     700,
			Title:      "Semi-Realistic City with Dynamic Weather",
			Fullscreen: false,
			VSync:      true,
		},
		Simulation: SimulationConfig{
			TickMillis:       16,
			MaxTicksPerFrame: 5,
			Seed:             0,
			CarDistance:      12,
			WheelRotation:    300,
			TrackBound:       120,
			WalkDistance:     6,
			SidewalkBound:    110,
			GaitBase:         0.02,
			GaitSpeed:        0.005,
			GaitWrap:         1000,
			SunStep:          0.02,
			SunInitial:       45,
			SunMorning:       40,
			SunSet:           180,
			SunRadius:        40,
		},
		Weather: WeatherConfig{
			CycleSeconds: 10,
			EaseRate:     0.5,
			Drops:        500,
			FallSpeed:    50,
			Spread:       100,
			Floor:        -100,
			Ceiling:      100,
			SpawnRange:   50,
		},
		Camera: CameraConfig{
			Yaw:           0,
			Pitch:         18,
			Distance:      28,
			Target:        [3]float64{0, 2.5, 0},
			YawPerPixel:   0.4,
			PitchPerPixel: 0.3,
			PitchLimit:    80,
			MinDistance:   5,
			MaxDistance:   150,
			ZoomStep:      1,
			RotateStep:    5,
			MoveSpeed:     0.8,
			FovY:          60,
			Near:          0.1,
			Far:           500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// TickSeconds returns the fixed simulation delta in seconds
func (c *Config) TickSeconds() float64 {
	return float64(c.Simulation.TickMillis) / 1000.0
}

// Validate corrects values that would break the simulation or camera.
// It returns the names of the fields it had to change.
func (c *Config) Validate() []string {
	var fixed []string
	def := DefaultConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
		fixed = append(fixed, "window.width")
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
		fixed = append(fixed, "window.height")
	}
	if c.Simulation.TickMillis <= 0 {
		c.Simulation.TickMillis = def.Simulation.TickMillis
		fixed = append(fixed, "simulation.tick_ms")
	}
	if c.Simulation.MaxTicksPerFrame < 1 {
		c.Simulation.MaxTicksPerFrame = 1
		fixed = append(fixed, "simulation.max_ticks_per_frame")
	}
	if c.Simulation.TrackBound <= 0 {
		c.Simulation.TrackBound = def.Simulation.TrackBound
		fixed = append(fixed, "simulation.track_bound")
	}
	if c.Simulation.SidewalkBound <= 0 {
		c.Simulation.SidewalkBound = def.Simulation.SidewalkBound
		fixed = append(fixed, "simulation.sidewalk_bound")
	}
	if c.Simulation.GaitWrap <= 0 {
		c.Simulation.GaitWrap = def.Simulation.GaitWrap
		fixed = append(fixed, "simulation.gait_wrap")
	}
	if c.Simulation.SunMorning >= c.Simulation.SunSet {
		c.Simulation.SunMorning = def.Simulation.SunMorning
		c.Simulation.SunSet = def.Simulation.SunSet
		fixed = append(fixed, "simulation.sun_morning")
	}
	if c.Weather.CycleSeconds <= 0 {
		c.Weather.CycleSeconds = def.Weather.CycleSeconds
		fixed = append(fixed, "weather.cycle_seconds")
	}
	if c.Weather.EaseRate < 0 {
		c.Weather.EaseRate = def.Weather.EaseRate
		fixed = append(fixed, "weather.ease_rate")
	}
	if c.Weather.Drops < 0 {
		c.Weather.Drops = 0
		fixed = append(fixed, "weather.drops")
	}
	if c.Weather.Spread <= 0 {
		c.Weather.Spread = def.Weather.Spread
		fixed = append(fixed, "weather.spread")
	}
	if c.Weather.SpawnRange <= 0 {
		c.Weather.SpawnRange = def.Weather.SpawnRange
		fixed = append(fixed, "weather.spawn_range")
	}
	if c.Camera.MinDistance <= 0 {
		c.Camera.MinDistance = def.Camera.MinDistance
		fixed = append(fixed, "camera.min_distance")
	}
	if c.Camera.MinDistance > c.Camera.MaxDistance {
		c.Camera.MinDistance, c.Camera.MaxDistance = c.Camera.MaxDistance, c.Camera.MinDistance
		fixed = append(fixed, "camera.max_distance")
	}
	if c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit >= 90 {
		c.Camera.PitchLimit = def.Camera.PitchLimit
		fixed = append(fixed, "camera.pitch_limit")
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		c.Camera.FovY = def.Camera.FovY
		fixed = append(fixed, "camera.fov_y")
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		c.Camera.Near = def.Camera.Near
		c.Camera.Far = def.Camera.Far
		fixed = append(fixed, "camera.near")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
		fixed = append(fixed, "audio.volume")
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
		fixed = append(fixed, "audio.sample_rate")
	}

	return fixed
}

// LoadConfig loads the configuration from a file. On error the defaults
// are returned together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
