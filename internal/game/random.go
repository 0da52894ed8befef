package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic spawn behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// uniform32 draws from [lo, hi). Spawn geometry works in raylib float32 space.
func uniform32(rng *rand.Rand, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float32()*(hi-lo)
}

// uniformInt draws from [lo, hi] inclusive, matching the documented ghost
// health roll of 30..80.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
