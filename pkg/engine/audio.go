package engine

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"cityscape/internal/logger"
	"cityscape/pkg/config"
	"cityscape/pkg/sound"
)

const framesPerBuffer = 1024

// AudioEngine streams the rain ambience to the default output device
type AudioEngine struct {
	logger *logger.Logger
	synth  *sound.RainSynth
	stream *portaudio.Stream

	mu        sync.Mutex
	isRunning bool
}

// NewAudioEngine opens and starts the output stream
func NewAudioEngine(cfg config.AudioConfig, seed int64, log *logger.Logger) (*AudioEngine, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	ae := &AudioEngine{
		logger: log,
		synth:  sound.NewRainSynth(cfg.SampleRate, cfg.Volume, seed),
	}

	stream, err := portaudio.OpenDefaultStream(0, sound.Channels, float64(cfg.SampleRate), framesPerBuffer, ae.audioCallback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %w", err)
	}

	ae.stream = stream
	ae.isRunning = true
	log.Infof("Audio stream started: %d Hz, %d channels", cfg.SampleRate, sound.Channels)
	return ae, nil
}

// audioCallback is called by PortAudio to fill the output buffer
func (ae *AudioEngine) audioCallback(out []float32) {
	ae.synth.Fill(out)
}

// SetIntensity follows the rain intensity of the scene
func (ae *AudioEngine) SetIntensity(v float64) {
	ae.synth.SetIntensity(v)
}

// Shutdown stops the stream and releases PortAudio
func (ae *AudioEngine) Shutdown() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.isRunning {
		return
	}
	ae.isRunning = false

	if err := ae.stream.Stop(); err != nil {
		ae.logger.Warnf("Failed to stop audio stream: %v", err)
	}
	if err := ae.stream.Close(); err != nil {
		ae.logger.Warnf("Failed to close audio stream: %v", err)
	}
	if err := portaudio.Terminate(); err != nil {
		ae.logger.Warnf("Failed to terminate PortAudio: %v", err)
	}
}
