// Package randbp provides the random id generators used by trace context
// propagation:
//
// 1. A thread-safe, properly seeded global *math/rand.Rand implementation.
//
// 2. Helpers to mint non-zero 64-bit span ids and 128-bit trace ids.
package randbp
