// Package sched - candidate-solution type: assignment, cost cache, cloning.
//
// A ScheduleSolution stores one ordered job queue per processor:
//
//	assignment[m] = {j0, j1, ...}   // job indices, execution order on m
//
// Validity contract: every job index in [0, N) appears exactly once across
// all queues (no omissions, no duplicates) and len(assignment) == M.
//
// Cost contract (the K2 criterion): walk each queue in order accumulating
// elapsed time; each job's completion time is the elapsed time at which it
// finishes; the cost is the sum of all completion times. The value is
// memoized and recomputed lazily only after a mutating call.
//
// Design:
//   - Mutation goes through RemoveAt / InsertAt, which invalidate the cost
//     cache themselves; there is no way to edit a queue without doing so.
//   - Assignment() exposes a read-only view; callers must not retain and
//     mutate the inner slices.
//   - No panics, no logging; sentinel errors from errors.go only.
package sched

// ScheduleSolution is one candidate assignment of jobs to processors.
// The zero value is not usable; construct via NewSolution, BuildGreedy,
// or Clone.
type ScheduleSolution struct {
	inst       *ProblemInstance // non-owning; shared across clones
	assignment [][]int          // assignment[m] = ordered job queue of processor m

	cachedCost int64
	costValid  bool
}

// NewSolution wraps an existing assignment into a solution.
//
// The assignment is adopted as-is (not copied and not validated); call
// IsValid to check it. A nil inner slice is a legal empty queue.
//
// Errors: ErrNilInstance, ErrProcessorCount (len(assignment) != inst.M).
func NewSolution(inst *ProblemInstance, assignment [][]int) (*ScheduleSolution, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if len(assignment) != inst.M {
		return nil, ErrProcessorCount
	}

	return &ScheduleSolution{inst: inst, assignment: assignment}, nil
}

// Instance returns the shared problem instance this solution refers to.
func (s *ScheduleSolution) Instance() *ProblemInstance { return s.inst }

// Assignment returns the per-processor job queues as a read-only view.
// Callers must not mutate the returned slices; use RemoveAt / InsertAt.
func (s *ScheduleSolution) Assignment() [][]int { return s.assignment }

// QueueLen returns the number of jobs currently queued on processor m,
// or 0 for an out-of-range m.
func (s *ScheduleSolution) QueueLen(m int) int {
	if m < 0 || m >= len(s.assignment) {
		return 0
	}

	return len(s.assignment[m])
}

// IsValid reports whether the assignment is a structurally correct schedule:
// exactly M queues, and every job in [0, N) occurs exactly once overall.
// Pure read; no side effects on the cost cache.
//
// Complexity: O(M + N).
func (s *ScheduleSolution) IsValid() bool {
	if s.inst == nil {
		return false
	}
	if len(s.assignment) != s.inst.M {
		return false
	}

	seen := make([]uint8, s.inst.N)

	var (
		m   int
		job int
	)
	for m = 0; m < len(s.assignment); m++ {
		for _, job = range s.assignment[m] {
			if job < 0 || job >= s.inst.N {
				return false
			}
			if seen[job] != 0 {
				return false // duplicate occurrence
			}
			seen[job] = 1
		}
	}

	var j int
	for j = 0; j < s.inst.N; j++ {
		if seen[j] == 0 {
			return false // omitted job
		}
	}

	return true
}

// Cost returns the K2 criterion: the sum of completion times of all jobs.
// Deterministic and idempotent given an unchanged assignment; the result is
// memoized and recomputed only after RemoveAt / InsertAt / MarkDirty.
//
// Complexity: O(M + N) on recompute, O(1) on a cache hit.
func (s *ScheduleSolution) Cost() int64 {
	if s.costValid {
		return s.cachedCost
	}

	var (
		total int64
		t     int64
		m     int
		job   int
	)
	for m = 0; m < len(s.assignment); m++ {
		t = 0
		for _, job = range s.assignment[m] {
			// The job runs to completion; its completion time is the
			// elapsed time on its processor once it finishes.
			t += s.inst.P[job]
			total += t
		}
	}

	s.cachedCost = total
	s.costValid = true

	return s.cachedCost
}

// Makespan returns the maximum per-processor total duration.
// Informational only; the engine optimizes Cost, not Makespan.
//
// Complexity: O(M + N); not memoized.
func (s *ScheduleSolution) Makespan() int64 {
	var (
		maxT int64
		t    int64
		m    int
		job  int
	)
	for m = 0; m < len(s.assignment); m++ {
		t = 0
		for _, job = range s.assignment[m] {
			t += s.inst.P[job]
		}
		if t > maxT {
			maxT = t
		}
	}

	return maxT
}

// Clone deep-copies the assignment and the cost cache; the problem instance
// pointer is shared, not copied. Later mutation of either copy never affects
// the other.
//
// Complexity: O(M + N).
func (s *ScheduleSolution) Clone() *ScheduleSolution {
	cp := &ScheduleSolution{
		inst:       s.inst,
		assignment: make([][]int, len(s.assignment)),
		cachedCost: s.cachedCost,
		costValid:  s.costValid,
	}

	var m int
	for m = 0; m < len(s.assignment); m++ {
		q := make([]int, len(s.assignment[m]))
		copy(q, s.assignment[m])
		cp.assignment[m] = q
	}

	return cp
}

// MarkDirty invalidates the memoized cost. RemoveAt and InsertAt call it
// internally; it is exported for callers that obtained queue access through
// Assignment and edited it in place despite the read-only contract.
func (s *ScheduleSolution) MarkDirty() { s.costValid = false }

// RemoveAt removes and returns the job at position pos of processor m's
// queue. Invalidates the cost cache.
//
// Errors: ErrProcessorIndex, ErrQueuePosition.
//
// Complexity: O(queue length) for the element shift.
func (s *ScheduleSolution) RemoveAt(m, pos int) (int, error) {
	if m < 0 || m >= len(s.assignment) {
		return 0, ErrProcessorIndex
	}
	q := s.assignment[m]
	if pos < 0 || pos >= len(q) {
		return 0, ErrQueuePosition
	}

	job := q[pos]
	s.assignment[m] = append(q[:pos], q[pos+1:]...)
	s.costValid = false

	return job, nil
}

// InsertAt inserts job at position pos of processor m's queue;
// pos may equal the queue length (append). Invalidates the cost cache.
//
// InsertAt does not check that job is absent elsewhere; pairing one RemoveAt
// with one InsertAt of the same job preserves validity by construction.
//
// Errors: ErrProcessorIndex, ErrQueuePosition.
//
// Complexity: O(queue length) for the element shift.
func (s *ScheduleSolution) InsertAt(m, pos, job int) error {
	if m < 0 || m >= len(s.assignment) {
		return ErrProcessorIndex
	}
	q := s.assignment[m]
	if pos < 0 || pos > len(q) {
		return ErrQueuePosition
	}

	q = append(q, 0)
	copy(q[pos+1:], q[pos:])
	q[pos] = job
	s.assignment[m] = q
	s.costValid = false

	return nil
}

// BuildGreedy constructs the canonical initial solution by least-loaded list
// scheduling: jobs are taken in index order and each is appended to the
// processor with the smallest accumulated load, ties broken by the lowest
// processor index. The result is always valid for a valid instance.
//
// Errors: ErrNilInstance.
//
// Complexity: O(N·M) time, O(M + N) space.
func BuildGreedy(inst *ProblemInstance) (*ScheduleSolution, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	assignment := make([][]int, inst.M)
	load := make([]int64, inst.M)

	var (
		job  int
		m    int
		best int
	)
	for job = 0; job < inst.N; job++ {
		best = 0
		for m = 1; m < inst.M; m++ {
			if load[m] < load[best] {
				best = m
			}
		}
		assignment[best] = append(assignment[best], job)
		load[best] += inst.P[job]
	}

	return &ScheduleSolution{inst: inst, assignment: assignment}, nil
}
