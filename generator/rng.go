// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"
	"time"
)

// defaultRNGSeed replaces a zero seed so WithSeed(0) stays reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 uses defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// clockSeed derives a non-zero seed from the wall clock.
func clockSeed() int64 {
	s := time.Now().UnixNano()
	if s == 0 {
		return defaultRNGSeed
	}
	return s
}

// coin returns true with probability 1/2.
func coin(r *rand.Rand) bool { return r.Intn(2) == 0 }
