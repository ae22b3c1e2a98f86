// Package sched - problem-instance type and its fail-fast constructor.
//
// A ProblemInstance is pure data: it carries no behavior beyond construction
// validation. All solutions reference it by pointer and never mutate it.
package sched

// ProblemInstance describes one scheduling problem:
// M identical processors, N jobs, and the processing time of each job.
//
// Treat a constructed instance as immutable. NewInstance copies the
// processing-time slice, so the caller may reuse its argument freely.
type ProblemInstance struct {
	// M is the number of identical parallel processors, M >= 1.
	M int

	// N is the number of jobs, N >= 1.
	N int

	// P holds the processing time of job i at P[i]; len(P) == N, P[i] >= 1.
	// Times are integral (the cost criterion is an integer sum).
	P []int64
}

// NewInstance validates and builds a ProblemInstance.
//
// Contracts:
//   - m >= 1, n >= 1, len(p) == n, all p[i] >= 1;
//   - p is copied: later mutation of the caller's slice has no effect.
//
// Errors: ErrProcessorCount, ErrJobCount, ErrProcessingLength,
// ErrProcessingTime.
//
// Complexity: O(n) time, O(n) space.
func NewInstance(m, n int, p []int64) (*ProblemInstance, error) {
	if m < 1 {
		return nil, ErrProcessorCount
	}
	if n < 1 {
		return nil, ErrJobCount
	}
	if len(p) != n {
		return nil, ErrProcessingLength
	}

	var i int
	for i = 0; i < n; i++ {
		if p[i] < 1 {
			return nil, ErrProcessingTime
		}
	}

	cp := make([]int64, n)
	copy(cp, p)

	return &ProblemInstance{M: m, N: n, P: cp}, nil
}

// TotalProcessingTime returns the sum of all processing times.
// Informational helper for load reporting; not part of the optimized cost.
//
// Complexity: O(n).
func (inst *ProblemInstance) TotalProcessingTime() int64 {
	var (
		total int64
		i     int
	)
	for i = 0; i < inst.N; i++ {
		total += inst.P[i]
	}

	return total
}
