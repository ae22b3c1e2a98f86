package anneal

import (
	"errors"
	"math/rand"

	"github.com/schedkit/schedkit/sched"
)

var (
	// ErrNilInitial indicates a nil initial solution.
	ErrNilInitial = errors.New("anneal: initial solution must not be nil")
	// ErrInvalidInitial indicates a structurally invalid initial solution.
	ErrInvalidInitial = errors.New("anneal: initial solution must be valid")
	// ErrNilMutation indicates a nil mutation operator.
	ErrNilMutation = errors.New("anneal: mutation operator must not be nil")
	// ErrNilSchedule indicates a nil cooling schedule (or a factory that
	// produced one).
	ErrNilSchedule = errors.New("anneal: cooling schedule must not be nil")
	// ErrStagnationLimit indicates MaxNoImprove < 1.
	ErrStagnationLimit = errors.New("anneal: stagnation limit must be >= 1")
	// ErrIterationLimit indicates HardIterLimit < 1.
	ErrIterationLimit = errors.New("anneal: hard iteration limit must be >= 1")
	// ErrWorkerCount indicates Workers < 1.
	ErrWorkerCount = errors.New("anneal: worker count must be >= 1")
	// ErrAllProcessorsEmpty indicates a mutation was asked to move a job in
	// a schedule holding no jobs at all; such a solution is malformed.
	ErrAllProcessorsEmpty = errors.New("anneal: every processor queue is empty")
	// ErrInvalidNeighbor indicates a mutation produced a structurally
	// invalid neighbor. This is a broken operator, not a data problem, and
	// aborts the run.
	ErrInvalidNeighbor = errors.New("anneal: mutation produced an invalid neighbor")
	// ErrNilNeighbor indicates a mutation returned no neighbor and no error,
	// violating the operator contract.
	ErrNilNeighbor = errors.New("anneal: mutation returned a nil neighbor")
)

// Mutation produces a structurally valid neighbor of a solution.
//
// Contracts:
//   - the input solution is never modified; the result is a fresh clone
//     mutated into the neighbor;
//   - implementations are stateless and safe to share read-only across
//     goroutines (the rng argument carries all per-call randomness);
//   - a nil result with a nil error is a contract violation and aborts
//     the calling search.
type Mutation interface {
	Mutate(s *sched.ScheduleSolution, rng *rand.Rand) (*sched.ScheduleSolution, error)
}

// Params bounds one sequential annealing run.
type Params struct {
	// MaxNoImprove stops the run after this many consecutive iterations
	// without a strict improvement of the best solution. >= 1.
	MaxNoImprove int

	// HardIterLimit caps the total iteration count regardless of progress,
	// so pathological parameters cannot loop forever. >= 1.
	HardIterLimit int
}

// DefaultParams mirrors the stagnation/cap defaults used throughout the
// package tests and the CLI.
func DefaultParams() Params {
	return Params{
		MaxNoImprove:  100,
		HardIterLimit: 1_000_000,
	}
}

// Validate fails fast on out-of-range limits.
func (p Params) Validate() error {
	if p.MaxNoImprove < 1 {
		return ErrStagnationLimit
	}
	if p.HardIterLimit < 1 {
		return ErrIterationLimit
	}

	return nil
}

// ParallelParams configures the multi-restart orchestrator.
type ParallelParams struct {
	// Workers is the number of independent annealing runs per wave. >= 1.
	Workers int

	// OuterNoImprove stops the orchestration after this many consecutive
	// waves without improving the global best. >= 1.
	OuterNoImprove int

	// Inner bounds every worker's sequential run.
	Inner Params

	// Seed selects the randomness mode. Zero keeps the historical
	// behavior: the base seed is drawn from the wall clock and parallel
	// runs are not reproducible. Any non-zero value makes the whole
	// parallel run deterministic: every worker stream is derived from
	// (Seed, wave, worker) only.
	Seed int64

	// Logger receives wave-granularity progress events. Optional; nil
	// means no logging. Never invoked from iteration hot paths.
	Logger Logger
}

// Validate fails fast on out-of-range counts and delegates to Inner.
func (p ParallelParams) Validate() error {
	if p.Workers < 1 {
		return ErrWorkerCount
	}
	if p.OuterNoImprove < 1 {
		return ErrStagnationLimit
	}

	return p.Inner.Validate()
}
