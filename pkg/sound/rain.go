package sound

import (
	"math"
	"sync/atomic"

	"cityscape/internal/math/noise"
	"cityscape/internal/util"
)

// Channels is the number of interleaved output channels Fill writes
const Channels = 2

const (
	// one-pole low-pass coefficient, keeps the hiss soft
	lowPass = 0.35
	// gusts drift over a few seconds
	gustRate   = 0.4
	gustDepth  = 0.35
	gustOctave = 3
)

// RainSynth renders a rain ambience as filtered noise with a slow gust
// envelope. Intensity may be changed from any goroutine while Fill runs on
// the audio thread.
type RainSynth struct {
	sampleRate float64
	volume     float64
	intensity  atomic.Uint64 // math.Float64bits of the current intensity

	gen   *noise.NoiseGenerator
	low   [Channels]float64
	clock float64
}

// NewRainSynth creates a silent synth. volume is the gain at full rain.
func NewRainSynth(sampleRate int, volume float64, seed int64) *RainSynth {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &RainSynth{
		sampleRate: float64(sampleRate),
		volume:     util.Clamp(volume, 0, 1),
		gen:        noise.NewNoiseGenerator(seed),
	}
}

// SetIntensity sets how heavy the rain sounds, clamped to [0,1]
func (s *RainSynth) SetIntensity(v float64) {
	s.intensity.Store(math.Float64bits(util.Clamp(v, 0, 1)))
}

// Intensity returns the current rain intensity
func (s *RainSynth) Intensity() float64 {
	return math.Float64frombits(s.intensity.Load())
}

// Gain returns the output gain before the gust envelope
func (s *RainSynth) Gain() float64 {
	return s.volume * s.Intensity()
}

// Fill writes interleaved stereo samples into out
func (s *RainSynth) Fill(out []float32) {
	gain := s.Gain()
	step := 1 / s.sampleRate

	for i := 0; i+Channels <= len(out); i += Channels {
		gust := 1 - gustDepth + gustDepth*(0.5+0.5*s.gen.FBM1D(s.clock*gustRate, gustOctave, 2, 0.5))
		s.clock += step

		for ch := 0; ch < Channels; ch++ {
			s.low[ch] += lowPass * (s.gen.RandomRange(-1, 1) - s.low[ch])
			out[i+ch] = softClip(s.low[ch] * gain * gust * 2)
		}
	}
	// odd trailing sample of a malformed buffer
	for i := len(out) - len(out)%Channels; i < len(out); i++ {
		out[i] = 0
	}
}

// softClip bends samples smoothly into (-1, 1)
func softClip(x float64) float32 {
	return float32(math.Tanh(x))
}
