package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().UnixNano())
}

// Random is a random number generator seeded from a running cycle count
// plus a process-wide wall-clock base seed (left out under ZeroSeed).
type Random struct {
	cycles func() uint64

	// ZeroSeed forces a fixed seed, useful for reproducible tests.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for Random. cycles
// should return the emulation's current cycle count.
func NewRandom(cycles func() uint64) *Random {
	return &Random{cycles: cycles}
}

func (r *Random) rand() *rand.Rand {
	var c int64
	if r.cycles != nil {
		c = int64(r.cycles())
	}
	if r.ZeroSeed {
		return rand.New(rand.NewSource(c))
	}
	return rand.New(rand.NewSource(baseSeed + c))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *Random) Intn(n int) int {
	return r.rand().Intn(n)
}

// Uint8 returns a pseudo-random byte.
func (r *Random) Uint8() uint8 {
	return uint8(r.rand().Intn(256))
}

// Source returns a *rand.Rand seeded from the current cycle count. Intn
// and Uint8 each reseed from scratch, which is the point when every call
// should be independently reproducible from its own cycle count; a caller
// that wants many draws from a single seed (filling a whole RAM array on
// a single power-on event, say) should take one Source and draw from it
// repeatedly instead.
func (r *Random) Source() *rand.Rand {
	return r.rand()
}
