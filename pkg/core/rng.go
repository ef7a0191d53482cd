package core

import "math/rand/v2"

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the package-level math/rand/v2 generator.
var DefaultSource Source = globalSource{}

// RandomCellState reports whether a cell starts lit. It returns true with
// probability trueChance; chances below 0 never light and above 1 always do.
// A nil src draws from DefaultSource.
func RandomCellState(src Source, trueChance float64) bool {
	if src == nil {
		src = DefaultSource
	}
	return src.Float64() < trueChance
}
