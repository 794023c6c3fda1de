// Package walk - RNG utilities for the walk ensemble.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across platforms
//     and worker counts.
//   - Encapsulation: one seed-resolution policy; no time-based sources
//     hidden in hot paths.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every walk derives its own
//     stream with deriveSeed before its job runs.
package walk

import (
	"math/rand"
	"time"
)

// resolveSeed applies the seed policy: negative means nondeterministic,
// resolved once per run from the wall clock; anything else is used
// verbatim.
func resolveSeed(seed int64) int64 {
	if seed < 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style avalanche mix, eliminating
// correlations between per-walk streams.
//
// The constants are the canonical SplitMix64 multipliers/finalizer; see
// Vigna 2014. Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamFor returns the independent deterministic RNG for walk i.
// Called once per job, outside any hot loop.
func streamFor(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}
