package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness capability injected into everything that draws
// odds, ratings, or form. Scoring code never reaches for a package-global RNG
// so tests can pin exact draws.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocked returns a Source safe for concurrent use, seeded from the
// system entropy pool.
func NewLocked() Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Source for tests.
func NewSeeded(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Between draws a uniform float in [min, max].
func Between(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}
