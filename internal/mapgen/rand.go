package mapgen

import "math/rand/v2"

// Rand is the random source consumed by generation. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
