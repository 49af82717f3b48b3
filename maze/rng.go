// Seeded randomness shared by the generator and the mutator.
//
// Goals:
//   - Determinism: same seed ⇒ identical maze across runs and platforms.
//   - Injection: callers pass a Rand; no package reads the global source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package maze

import "math/rand"

// Rand is the random source consumed by generation and mutation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
	// Shuffle permutes n elements through swap (Fisher-Yates).
	Shuffle(n int, swap func(i, j int))
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a deterministic *rand.Rand seeded with seed verbatim.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// Used to give independent streams (generation, mutation) to one session
// seed without correlating them.
//
// SplitMix64 finalizer constants.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleEdges permutes edges in place with rng.
func shuffleEdges(edges []Edge, rng Rand) {
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})
}
