package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional: one shared stream drives a
	// whole generation pass so a seed reproduces the full mystery.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// shuffled returns a shuffled copy, leaving the input untouched.
func shuffled[T any](rng *rand.Rand, values []T) []T {
	out := append([]T{}, values...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// pickN samples up to n distinct entries without replacement.
func pickN[T any](rng *rand.Rand, values []T, n int) []T {
	out := shuffled(rng, values)
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

func pickOne[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}
