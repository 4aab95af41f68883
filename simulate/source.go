package simulate

import (
	"math/rand"
	"time"
)

// Source is the randomness a generator draws from. *rand.Rand satisfies it.
// A Source must not be shared between goroutines.
type Source interface {
	// Float64 returns a number in [0, 1)
	Float64() float64
	// Intn returns a number in [0, n)
	Intn(n int) int
}

// NewSource returns a seeded source; equal seeds replay equal samples.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeSeed returns a seed taken from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// NewTimeSource returns a source seeded from the wall clock.
func NewTimeSource() *rand.Rand {
	return NewSource(TimeSeed())
}
