package randbp

import (
	"math/rand"
)

// R is a global thread-safe rng.
//
// It embeds *math/rand.Rand, but properly seeded and safe for concurrent use.
//
// It should be used instead of the global functions inside math/rand package.
//
// It's never suitable for security purpose,
// use crypto/rand for that instead.
var R = New(GetSeed())

// Rand embeds *math/rand.Rand.
//
// When initialized with New(), all functions besides Read are safe for
// concurrent use.
type Rand struct {
	*rand.Rand
}

// New initializes a thread-safe, properly seeded Rand.
func New(seed int64) Rand {
	return Rand{
		Rand: rand.New(NewLockedSource64(rand.NewSource(seed))),
	}
}

// NonZeroUint64 returns a random uint64 that is never 0.
//
// W3C trace context treats all-zero ids as invalid,
// so this is what should be used to mint new span ids.
func (r Rand) NonZeroUint64() uint64 {
	for {
		if n := r.Uint64(); n != 0 {
			return n
		}
	}
}

// Uint128 returns the high and low halves of a random 128-bit id,
// guaranteed not to be all zero.
func (r Rand) Uint128() (high, low uint64) {
	high = r.Uint64()
	if high == 0 {
		return 0, r.NonZeroUint64()
	}
	return high, r.Uint64()
}
