// Package vectors generates the random vectors used as documents and queries.
package vectors

import (
	"math/rand"
	"time"
)

// Generator produces vectors with components drawn uniformly from [0,1).
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. A zero seed is replaced
// by the current time, so unseeded runs differ from each other.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Vector returns a fresh vector of length dim.
func (g *Generator) Vector(dim int) []float32 {
	if dim <= 0 {
		return nil
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = g.rng.Float32()
	}
	return vec
}
