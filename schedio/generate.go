// Package schedio - reproducible random instance generation.
package schedio

import (
	"errors"
	"math/rand"

	"github.com/schedkit/schedkit/sched"
)

var (
	// ErrTimeBounds indicates pMin < 1 or pMax < pMin.
	ErrTimeBounds = errors.New("schedio: processing-time bounds require 1 <= pMin <= pMax")
)

// RandomInstance builds an instance with n processing times drawn uniformly
// from the inclusive range [pMin, pMax].
//
// Contracts:
//   - m >= 1, n >= 1 (enforced by sched.NewInstance);
//   - 1 <= pMin <= pMax;
//   - rng may be nil ⇒ a deterministic default stream (seed 1) is used, so
//     the zero-config call is still reproducible.
//
// Complexity: O(n).
func RandomInstance(m, n int, pMin, pMax int64, rng *rand.Rand) (*sched.ProblemInstance, error) {
	if pMin < 1 || pMax < pMin {
		return nil, ErrTimeBounds
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	// Guard n before allocating; the full validation happens in NewInstance.
	if n < 1 {
		return nil, sched.ErrJobCount
	}

	p := make([]int64, n)
	span := pMax - pMin + 1

	var i int
	for i = 0; i < n; i++ {
		p[i] = pMin + rng.Int63n(span)
	}

	return sched.NewInstance(m, n, p)
}
