package util

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

// Random is a seedable source of the cosmetic randomness used by the scene
// (pedestrian jitter, raindrop placement, grass blades).
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom creates a random source. A zero seed picks one from the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn returns a random int in [0, n)
func (r *Random) Intn(n int) int {
	return r.rng.Intn(n)
}

// Steps returns a random value in {0, 1, ..., n-1} scaled by step.
// It reproduces "rand() % n * step" style jitter with a bounded set of values.
func (r *Random) Steps(n int, step float64) float64 {
	return float64(r.rng.Intn(n)) * step
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Approach moves value toward target by at most step, never overshooting.
func Approach(value, target, step float64) float64 {
	if value < target {
		value += step
		if value > target {
			return target
		}
		return value
	}
	value -= step
	if value < target {
		return target
	}
	return value
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDirIfNotExist creates a directory if it doesn't exist
func CreateDirIfNotExist(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
