// Package research - sweep execution.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/schedkit/schedkit/anneal"
	"github.com/schedkit/schedkit/sched"
	"github.com/schedkit/schedkit/schedio"
)

// Record aggregates the repeated runs of one (M, N) case.
type Record struct {
	// RunID tags the record; one id per case execution.
	RunID string

	// Case identity.
	Mode string
	M    int
	N    int
	Runs int

	// GreedyCost is the cost of the shared greedy starting solution.
	GreedyCost int64

	// Final-cost statistics across repetitions.
	Cost CostStats

	// Wall-time statistics across repetitions, in milliseconds.
	TimeMs DurationStats
}

// Runner executes sweeps. The zero value is usable; Logger is optional.
type Runner struct {
	// Logger receives per-case progress events; nil disables logging.
	Logger anneal.Logger
}

// RunSweep executes every case of the sweep in declaration order and
// returns one Record per (M, N) pair. ctx cancels between repetitions;
// the engine itself runs each repetition to its own termination rule
// (the core has no cancellation support, so a cancel takes effect at the
// next repetition boundary).
func (r Runner) RunSweep(ctx context.Context, s Sweep) ([]Record, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	factory, err := s.Cooling.Factory()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(s.MList)*len(s.NList))

	caseIdx := 0
	for _, m := range s.MList {
		for _, n := range s.NList {
			rec, cerr := r.runCase(ctx, s, factory, m, n, int64(caseIdx))
			if cerr != nil {
				return nil, fmt.Errorf("research: case M=%d N=%d: %w", m, n, cerr)
			}
			records = append(records, rec)
			caseIdx++
		}
	}

	return records, nil
}

// runCase generates one instance, runs Runs repetitions and aggregates.
func (r Runner) runCase(
	ctx context.Context,
	s Sweep,
	factory anneal.CoolingFactory,
	m, n int,
	caseOffset int64,
) (Record, error) {
	// One instance per case, derived from the sweep seed; repetitions vary
	// only the search stream, matching the original harness design.
	instRng := rngForSeed(s.Seed + caseOffset)
	inst, err := schedio.RandomInstance(m, n, s.PMin, s.PMax, instRng)
	if err != nil {
		return Record{}, err
	}

	initial, err := sched.BuildGreedy(inst)
	if err != nil {
		return Record{}, err
	}

	inner := anneal.Params{MaxNoImprove: s.MaxNoImprove, HardIterLimit: s.HardIterLimit}

	costs := make([]int64, 0, s.Runs)
	times := make([]float64, 0, s.Runs)

	var run int
	for run = 0; run < s.Runs; run++ {
		if cerr := ctx.Err(); cerr != nil {
			return Record{}, cerr
		}

		runSeed := s.Seed + caseOffset*int64(s.Runs) + int64(run) + 1 // never zero by construction for Seed >= 0

		start := time.Now()

		var best *sched.ScheduleSolution
		if s.Mode == ModeParallel {
			pm, perr := anneal.NewParallelManager(initial, anneal.MoveOne{}, factory, anneal.ParallelParams{
				Workers:        s.Workers,
				OuterNoImprove: s.OuterNoImprove,
				Inner:          inner,
				Seed:           runSeed,
				Logger:         r.Logger,
			})
			if perr != nil {
				return Record{}, perr
			}
			best, err = pm.RunParallel()
		} else {
			schedule, ferr := factory()
			if ferr != nil {
				return Record{}, ferr
			}
			sa, serr := anneal.New(initial, anneal.MoveOne{}, schedule, inner, rngForSeed(runSeed))
			if serr != nil {
				return Record{}, serr
			}
			best, err = sa.Run()
		}
		if err != nil {
			return Record{}, err
		}

		costs = append(costs, best.Cost())
		times = append(times, float64(time.Since(start).Microseconds())/1000.0)
	}

	rec := Record{
		RunID:      uuid.NewString(),
		Mode:       s.Mode,
		M:          m,
		N:          n,
		Runs:       s.Runs,
		GreedyCost: initial.Cost(),
		Cost:       calcCostStats(costs),
		TimeMs:     calcDurationStats(times),
	}

	if r.Logger != nil {
		r.Logger.Info("case finished",
			"run_id", rec.RunID,
			"mode", rec.Mode,
			"m", m,
			"n", n,
			"greedy_cost", rec.GreedyCost,
			"best_cost", rec.Cost.Best,
			"mean_cost", rec.Cost.Mean,
		)
	}

	return rec, nil
}
