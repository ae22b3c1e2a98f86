// Package anneal - RNG utilities shared by the search loops.
//
// This file centralizes random-stream creation for the sequential loop and
// the parallel orchestrator.
//
// Goals:
//   - Determinism on demand: a fixed base seed ⇒ identical worker streams
//     across runs and platforms.
//   - Encapsulation: one seed-mixing function; no ad-hoc time arithmetic
//     scattered through the workers.
//   - Independence: distinct (wave, worker) pairs map to uncorrelated
//     streams via an xxh3 avalanche over the packed identifiers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand across
//     goroutines; derive one stream per worker with workerSeed + rngFromSeed.
package anneal

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/zeebo/xxh3"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0 to
// rngFromSeed. Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// timeBaseSeed returns a wall-clock base seed for the non-reproducible
// mode (ParallelParams.Seed == 0), matching the historical behavior where
// two parallel runs never share streams.
func timeBaseSeed() int64 {
	return time.Now().UnixNano()
}

// workerSeed mixes a base seed with a wave and worker identifier into an
// independent 64-bit stream seed.
//
// Rationale:
//   - Workers must never share a stream, and the same worker must get a
//     fresh stream every wave.
//   - xxh3 over the packed 24-byte (base, wave, worker) tuple gives strong
//     bit diffusion: adjacent identifiers produce unrelated seeds.
//
// Complexity: O(1).
func workerSeed(base int64, wave, worker uint64) int64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(base))
	binary.LittleEndian.PutUint64(buf[8:16], wave)
	binary.LittleEndian.PutUint64(buf[16:24], worker)

	return int64(xxh3.Hash(buf[:]))
}
