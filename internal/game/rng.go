package game

import (
	"math/rand"
	"time"
)

// RNG is the random source the engine draws from. Inject a seeded one for
// reproducible battles.
type RNG interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// SeededRNG wraps math/rand with an explicit seed.
type SeededRNG struct {
	rng  *rand.Rand
	seed int64
}

// NewRNG creates a seeded source. A zero seed uses the current time.
func NewRNG(seed int64) *SeededRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRNG{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was created with.
func (s *SeededRNG) Seed() int64 {
	return s.seed
}

// Float64 returns a uniform value in [0.0, 1.0).
func (s *SeededRNG) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform value in [0, n).
func (s *SeededRNG) Intn(n int) int {
	return s.rng.Intn(n)
}

// uniform draws from [lo, hi).
func uniform(r RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
