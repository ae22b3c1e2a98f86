// Package anneal - the sequential simulated-annealing loop.
//
// Loop per iteration (strict order, no parallelism inside one run):
//
//	a) generate a neighbor of current via the mutation operator;
//	b) delta = neighbor.Cost() − current.Cost();
//	c) accept unconditionally if delta <= 0, otherwise with probability
//	   exp(-delta/T) against one uniform draw in [0,1) - the Metropolis
//	   rule; T is floored at cooling.MinTemperature defensively;
//	d) replace best with a clone of current on strict improvement and
//	   reset the stagnation counter, else increment it;
//	e) advance the cooling schedule one step;
//	f) stop on stagnation >= MaxNoImprove or the hard iteration cap.
//
// Contracts:
//   - the constructor deep-clones the initial solution into both current
//     and best; the caller's solution is never touched;
//   - the cooling schedule is Reset once before the first iteration, so a
//     reused schedule never leaks a previous run's cooled-down state;
//   - Run returns a clone of best, never worse than the initial solution;
//   - a mutation failure or an invalid/nil neighbor aborts the run: it is
//     a broken operator, not a recoverable condition.
package anneal

import (
	"math"
	"math/rand"

	"github.com/schedkit/schedkit/cooling"
	"github.com/schedkit/schedkit/sched"
)

// SimulatedAnnealing owns one sequential search: a current/best solution
// pair, one cooling schedule, one mutation operator and one random stream.
// Not safe for concurrent use; run one instance per goroutine.
type SimulatedAnnealing struct {
	mutation Mutation
	schedule cooling.Schedule
	params   Params
	rng      *rand.Rand

	current *sched.ScheduleSolution
	best    *sched.ScheduleSolution
}

// New validates the configuration and clones initial into the run state.
//
// Contracts:
//   - initial must be non-nil and valid (cloned twice; never modified);
//   - mutation and schedule must be non-nil; params must pass Validate;
//   - rng may be nil ⇒ the deterministic default stream is used.
//
// Errors: ErrNilInitial, ErrInvalidInitial, ErrNilMutation, ErrNilSchedule,
// ErrStagnationLimit, ErrIterationLimit.
func New(
	initial *sched.ScheduleSolution,
	mutation Mutation,
	schedule cooling.Schedule,
	params Params,
	rng *rand.Rand,
) (*SimulatedAnnealing, error) {
	if initial == nil {
		return nil, ErrNilInitial
	}
	if !initial.IsValid() {
		return nil, ErrInvalidInitial
	}
	if mutation == nil {
		return nil, ErrNilMutation
	}
	if schedule == nil {
		return nil, ErrNilSchedule
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return &SimulatedAnnealing{
		mutation: mutation,
		schedule: schedule,
		params:   params,
		rng:      rng,
		current:  initial.Clone(),
		best:     initial.Clone(),
	}, nil
}

// Run executes the annealing loop to termination and returns a clone of the
// best solution found. result.Cost() <= initial.Cost() always holds: best
// starts as the initial solution and is only ever replaced by a strictly
// better clone of current.
func (sa *SimulatedAnnealing) Run() (*sched.ScheduleSolution, error) {
	// A reused schedule must start from T0, not a prior run's state.
	sa.schedule.Reset()

	var (
		noImprove int
		iters     int
	)
	for {
		neighbor, err := sa.mutation.Mutate(sa.current, sa.rng)
		if err != nil {
			return nil, err
		}
		if neighbor == nil {
			return nil, ErrNilNeighbor
		}

		delta := neighbor.Cost() - sa.current.Cost()

		accept := delta <= 0
		if !accept {
			temp := sa.schedule.CurrentTemperature()
			if temp <= 0 {
				// The Schedule contract forbids this; treat as the floor
				// rather than "never accept".
				temp = cooling.MinTemperature
			}
			prob := math.Exp(-float64(delta) / temp)
			if sa.rng.Float64() < prob {
				accept = true
			}
		}
		if accept {
			sa.current = neighbor
		}

		if sa.current.Cost() < sa.best.Cost() {
			sa.best = sa.current.Clone()
			noImprove = 0
		} else {
			noImprove++
		}

		sa.schedule.NextStep()

		if noImprove >= sa.params.MaxNoImprove {
			break
		}
		iters++
		if iters >= sa.params.HardIterLimit {
			break
		}
	}

	return sa.best.Clone(), nil
}

// Best returns a clone of the best solution found so far without running.
// Mostly useful for orchestration and debugging.
func (sa *SimulatedAnnealing) Best() *sched.ScheduleSolution {
	return sa.best.Clone()
}
