package campaign

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the source of every random draw the engine makes. Tests supply a
// seeded or scripted implementation to get exact outputs.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// lockedRand serializes access to a math/rand generator, which is not safe
// for concurrent use on its own.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a goroutine-safe PCG generator. A zero seed seeds from the
// clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// intBetween draws from [lo, hi).
func intBetween(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}

// floatBetween draws from [lo, hi).
func floatBetween(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
