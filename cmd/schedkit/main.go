// Command schedkit is the front-end for the annealing engine: it generates
// problem instances, runs sequential or parallel searches on them, and
// executes research sweeps.
//
// The command layer holds all IO and presentation; the engine packages
// (sched, cooling, anneal) stay print-free and flag-free.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "schedkit",
		Short:         "Simulated-annealing scheduler for N jobs on M identical processors",
		Long:          "schedkit minimizes the sum of job completion times (the K2 criterion)\nvia simulated annealing, sequentially or with parallel multi-restart waves.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newResearchCmd())

	return root
}
