// Package kmeans - deterministic random generation.
//
// All randomness in this package flows through rngFromSeed. There are no
// time-based sources; the same seed reproduces identical seeding draws and
// therefore identical clustering output for identical input.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
