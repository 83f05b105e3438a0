package noise

import (
	"math"
	"math/rand"
)

// NoiseGenerator is a utility for generating smooth noise and white noise
type NoiseGenerator struct {
	rng  *rand.Rand
	seed int64
}

// NewNoiseGenerator creates a new noise generator with the given seed
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// RandomRange returns a random float in range [min, max)
func (ng *NoiseGenerator) RandomRange(min, max float64) float64 {
	return min + ng.rng.Float64()*(max-min)
}

// Perlin1D generates 1D Perlin noise in roughly [-1, 1]
func (ng *NoiseGenerator) Perlin1D(x float64) float64 {
	x0 := math.Floor(x)
	x1 := x0 + 1.0

	sx := smoothstep(x - x0)

	g0 := gradient1D(hash(int(x0), 0, 0, int(ng.seed)))
	g1 := gradient1D(hash(int(x1), 0, 0, int(ng.seed)))

	v0 := g0 * (x - x0)
	v1 := g1 * (x - x1)

	return lerp(v0, v1, sx) * 2.0
}

// FBM1D sums octaves of Perlin1D and normalizes the result to [-1, 1]
func (ng *NoiseGenerator) FBM1D(x float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		result += ng.Perlin1D(x*frequency+float64(i)*17.0) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	if max == 0 {
		return 0
	}

	return math.Max(-1, math.Min(1, result/max))
}

// hash combines the coordinates and seed to create a unique hash
func hash(x, y, z, seed int) int {
	h := seed + x*374761393 + y*668265263 + z*374761393
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// gradient1D generates a 1D gradient from a hash
func gradient1D(hash int) float64 {
	if hash&1 == 0 {
		return 1.0
	}
	return -1.0
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep applies the improved Perlin fade 6t^5 - 15t^4 + 10t^3
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
