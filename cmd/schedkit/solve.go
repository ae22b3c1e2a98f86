package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/schedkit/schedkit/anneal"
	"github.com/schedkit/schedkit/cooling"
	"github.com/schedkit/schedkit/sched"
	"github.com/schedkit/schedkit/schedio"
)

// coolingFlags groups the schedule selection shared by solve and research
// front-ends.
type coolingFlags struct {
	kind  string
	t0    float64
	alpha float64
	beta  float64
	gamma float64
}

func (cf coolingFlags) factory() (anneal.CoolingFactory, error) {
	switch cf.kind {
	case "geometric":
		return func() (cooling.Schedule, error) { return cooling.NewGeometric(cf.t0, cf.alpha) }, nil
	case "linear":
		return func() (cooling.Schedule, error) { return cooling.NewLinear(cf.t0, cf.beta) }, nil
	case "cauchy":
		return func() (cooling.Schedule, error) { return cooling.NewCauchy(cf.t0, cf.gamma) }, nil
	default:
		return nil, fmt.Errorf("unsupported --cooling kind %q (geometric|linear|cauchy)", cf.kind)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		in             string
		cf             coolingFlags
		maxNoImprove   int
		hardIterLimit  int
		workers        int
		outerNoImprove int
		seed           int64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run simulated annealing on a CSV instance",
		Long: "Loads an instance, builds the greedy starting schedule and anneals it.\n" +
			"With --workers 0 the search is sequential; otherwise waves of that many\n" +
			"parallel restarts run until the outer stagnation limit fires.",
		RunE: func(_ *cobra.Command, _ []string) error {
			inst, err := schedio.Load(in)
			if err != nil {
				return err
			}

			initial, err := sched.BuildGreedy(inst)
			if err != nil {
				return err
			}

			factory, err := cf.factory()
			if err != nil {
				return err
			}

			inner := anneal.Params{MaxNoImprove: maxNoImprove, HardIterLimit: hardIterLimit}

			slog.Info("instance loaded",
				"path", in, "m", inst.M, "n", inst.N,
				"greedy_cost", initial.Cost(), "greedy_makespan", initial.Makespan(),
			)

			start := time.Now()

			var best *sched.ScheduleSolution
			if workers > 0 {
				pm, perr := anneal.NewParallelManager(initial, anneal.MoveOne{}, factory, anneal.ParallelParams{
					Workers:        workers,
					OuterNoImprove: outerNoImprove,
					Inner:          inner,
					Seed:           seed,
					Logger:         anneal.NewSlogLogger(slog.Default()),
				})
				if perr != nil {
					return perr
				}
				best, err = pm.RunParallel()
			} else {
				schedule, ferr := factory()
				if ferr != nil {
					return ferr
				}

				rng := rand.New(rand.NewSource(seed))
				if seed == 0 {
					rng = rand.New(rand.NewSource(time.Now().UnixNano()))
				}

				var sa *anneal.SimulatedAnnealing
				sa, err = anneal.New(initial, anneal.MoveOne{}, schedule, inner, rng)
				if err != nil {
					return err
				}
				best, err = sa.Run()
			}
			if err != nil {
				return err
			}

			printSolution(best, time.Since(start))

			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input instance CSV (required)")
	cmd.Flags().StringVar(&cf.kind, "cooling", "geometric", "cooling schedule: geometric|linear|cauchy")
	cmd.Flags().Float64Var(&cf.t0, "t0", 1000, "initial temperature")
	cmd.Flags().Float64Var(&cf.alpha, "alpha", 0.99, "geometric decay factor")
	cmd.Flags().Float64Var(&cf.beta, "beta", 1, "linear decrement")
	cmd.Flags().Float64Var(&cf.gamma, "gamma", 0.5, "cauchy decay rate")
	cmd.Flags().IntVar(&maxNoImprove, "max-no-improve", 1000, "inner stagnation limit")
	cmd.Flags().IntVar(&hardIterLimit, "hard-limit", 1_000_000, "hard iteration cap")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers per wave (0 = sequential)")
	cmd.Flags().IntVar(&outerNoImprove, "outer-no-improve", 10, "outer stagnation limit (parallel mode)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base seed (0 = wall clock, non-reproducible)")

	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("marking in required: %v", err))
	}

	return cmd
}
