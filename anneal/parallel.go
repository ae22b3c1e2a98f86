// Package anneal - wave-based parallel multi-restart orchestration.
//
// One outer iteration ("wave"):
//
//  1. unless this is the first wave, stop if outer − lastImprovement has
//     reached OuterNoImprove;
//  2. spawn exactly Workers goroutines;
//  3. each worker derives its own RNG stream, obtains its own cooling
//     schedule from the factory, snapshots the global best under the lock,
//     runs a full inner SimulatedAnnealing, then under the lock replaces
//     the global best with a clone of its result iff strictly better;
//  4. join every worker before the next wave begins (the wave is a
//     synchronization barrier);
//  5. record the wave index if any worker improved; advance the counter.
//
// The global best cost is non-increasing across waves; the order in which
// workers of one wave observe or update it is unspecified.
package anneal

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/schedkit/schedkit/cooling"
	"github.com/schedkit/schedkit/sched"
)

// CoolingFactory builds one independent cooling.Schedule per call.
//
// Schedules carry mutable state and must never be shared across workers,
// so the orchestrator invokes the factory once per worker per wave.
type CoolingFactory func() (cooling.Schedule, error)

// ParallelManager orchestrates waves of independent annealing runs that
// race to improve a single lock-guarded global best solution.
type ParallelManager struct {
	mutation Mutation
	factory  CoolingFactory
	params   ParallelParams
	log      Logger

	mu              sync.Mutex // guards globalBest
	globalBest      *sched.ScheduleSolution
	lastImprovement int
}

// NewParallelManager validates the configuration and clones initial into
// the global best.
//
// Errors: ErrNilInitial, ErrInvalidInitial, ErrNilMutation, ErrNilSchedule
// (nil factory), ErrWorkerCount, ErrStagnationLimit, ErrIterationLimit.
func NewParallelManager(
	initial *sched.ScheduleSolution,
	mutation Mutation,
	factory CoolingFactory,
	params ParallelParams,
) (*ParallelManager, error) {
	if initial == nil {
		return nil, ErrNilInitial
	}
	if !initial.IsValid() {
		return nil, ErrInvalidInitial
	}
	if mutation == nil {
		return nil, ErrNilMutation
	}
	if factory == nil {
		return nil, ErrNilSchedule
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	log := params.Logger
	if log == nil {
		log = nopLogger{}
	}

	return &ParallelManager{
		mutation:   mutation,
		factory:    factory,
		params:     params,
		log:        log,
		globalBest: initial.Clone(),
	}, nil
}

// RunParallel executes waves until the outer stagnation rule fires and
// returns a clone of the global best. A worker error (a broken cooling
// factory or mutation operator) aborts the whole run after its wave joins.
func (pm *ParallelManager) RunParallel() (*sched.ScheduleSolution, error) {
	base := pm.params.Seed
	if base == 0 {
		// Historical mode: wall-clock base seed, non-reproducible runs.
		base = timeBaseSeed()
	}

	outer := 0
	for {
		if outer > 0 && outer-pm.lastImprovement >= pm.params.OuterNoImprove {
			break
		}

		var improved atomic.Bool
		g := new(errgroup.Group)

		var w int
		for w = 0; w < pm.params.Workers; w++ {
			worker := w
			g.Go(func() error {
				return pm.runWorker(base, uint64(outer), uint64(worker), &improved)
			})
		}

		// Wave barrier: no worker starts wave k+1 before every worker of
		// wave k has finished.
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if improved.Load() {
			pm.lastImprovement = outer
		}

		pm.mu.Lock()
		waveCost := pm.globalBest.Cost()
		pm.mu.Unlock()
		pm.log.Debug("wave finished",
			"wave", outer,
			"improved", improved.Load(),
			"best_cost", waveCost,
		)

		outer++
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.log.Info("parallel annealing finished",
		"waves", outer,
		"best_cost", pm.globalBest.Cost(),
	)

	return pm.globalBest.Clone(), nil
}

// runWorker executes one full inner annealing run and races its result
// against the global best.
func (pm *ParallelManager) runWorker(base int64, wave, worker uint64, improved *atomic.Bool) error {
	rng := rngFromSeed(workerSeed(base, wave, worker))

	schedule, err := pm.factory()
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrNilSchedule
	}

	// Snapshot the starting point; only clones cross the lock boundary.
	pm.mu.Lock()
	start := pm.globalBest.Clone()
	pm.mu.Unlock()

	sa, err := New(start, pm.mutation, schedule, pm.params.Inner, rng)
	if err != nil {
		return err
	}

	local, err := sa.Run()
	if err != nil {
		return err
	}

	pm.mu.Lock()
	if local.Cost() < pm.globalBest.Cost() {
		pm.globalBest = local.Clone()
		improved.Store(true)
	}
	pm.mu.Unlock()

	return nil
}

// GlobalBest returns a clone of the current global best. Safe to call
// concurrently with a running RunParallel.
func (pm *ParallelManager) GlobalBest() *sched.ScheduleSolution {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	return pm.globalBest.Clone()
}
