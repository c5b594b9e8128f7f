// Package solver - deterministic random source for the Collapser.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs on every platform.
//   - Encapsulation: one factory, no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. One Solver owns one *rand.Rand.
package solver

import "math/rand"

// NewRand returns a deterministic *rand.Rand for seed. Every seed, zero
// included, is used verbatim.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new, decorrelated
// seed. Callers that retry after a contradiction use it to get an
// independent but reproducible seed per attempt.
//
// The constants are the SplitMix64 increment and finalizer multipliers.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
