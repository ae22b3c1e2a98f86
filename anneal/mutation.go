// Package anneal - the concrete "move one job" mutation operator.
//
// MoveOne relocates exactly one job:
//
//  1. pick a source processor uniformly among those holding >= 1 job;
//  2. pick a uniformly random position on it and remove that job;
//  3. pick a destination processor uniformly among ALL M processors
//     (the source included);
//  4. pick a uniformly random insertion position in [0, len] inclusive of
//     the destination's now possibly-shortened queue, and insert there.
//
// One remove paired with one insert of the same job preserves the
// "each job exactly once" invariant by construction.
package anneal

import (
	"math/rand"

	"github.com/schedkit/schedkit/sched"
)

// MoveOne is the stateless move-one-job Mutation. Safe to share read-only
// across goroutines; all randomness comes from the per-call rng.
type MoveOne struct{}

// Mutate implements Mutation.
//
// Contracts:
//   - s is cloned first and never modified;
//   - the returned neighbor satisfies IsValid whenever s does;
//   - a schedule with every queue empty signals ErrAllProcessorsEmpty
//     rather than silently returning a no-op neighbor.
//
// A nil rng falls back to the deterministic default stream, mirroring the
// package seed policy.
//
// Complexity: O(M + N) for the clone plus O(queue length) for the edits.
func (MoveOne) Mutate(s *sched.ScheduleSolution, rng *rand.Rand) (*sched.ScheduleSolution, error) {
	if s == nil {
		return nil, ErrNilInitial
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	neighbor := s.Clone()
	m := neighbor.Instance().M

	// Source candidates: processors holding at least one job.
	nonEmpty := make([]int, 0, m)

	var proc int
	for proc = 0; proc < m; proc++ {
		if neighbor.QueueLen(proc) > 0 {
			nonEmpty = append(nonEmpty, proc)
		}
	}
	if len(nonEmpty) == 0 {
		return nil, ErrAllProcessorsEmpty
	}

	src := nonEmpty[r.Intn(len(nonEmpty))]
	srcPos := r.Intn(neighbor.QueueLen(src))

	job, err := neighbor.RemoveAt(src, srcPos)
	if err != nil {
		return nil, err
	}

	dst := r.Intn(m)
	dstPos := r.Intn(neighbor.QueueLen(dst) + 1) // insertion may append

	if err = neighbor.InsertAt(dst, dstPos, job); err != nil {
		return nil, err
	}

	if !neighbor.IsValid() {
		return nil, ErrInvalidNeighbor
	}

	return neighbor, nil
}
