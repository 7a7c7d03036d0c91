package engine

import (
	"math/rand"
	"time"
)

// Rand is the random source used for market pricing. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0,1).
	Float64() float64
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
