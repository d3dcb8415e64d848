package upload

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the randomness used to build synthetic records.
// Tests substitute a fixed implementation to get deterministic output.
type Source interface {
	Uint32() uint32
	Float64() float64
}

// lockedSource makes a *rand.Rand safe for use from concurrent upload tasks.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Uint32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Uint32()
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalSource struct{}

func (globalSource) Uint32() uint32   { return rand.Uint32() }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the runtime's randomly seeded generator.
func DefaultSource() Source {
	return globalSource{}
}
