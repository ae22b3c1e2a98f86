package research

import "math/rand"

// rngForSeed builds a deterministic stream for instance generation and
// sequential-run seeding.
func rngForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
