package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/schedkit/schedkit/anneal"
	"github.com/schedkit/schedkit/research"
)

func newResearchCmd() *cobra.Command {
	var (
		config string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "research",
		Short: "Execute a YAML-declared sweep and export aggregate statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sweep, err := research.LoadSweep(config)
			if err != nil {
				return err
			}

			slog.Info("sweep loaded",
				"config", config, "mode", sweep.Mode,
				"cases", len(sweep.MList)*len(sweep.NList), "runs", sweep.Runs,
			)

			runner := research.Runner{Logger: anneal.NewSlogLogger(slog.Default())}
			records, err := runner.RunSweep(cmd.Context(), sweep)
			if err != nil {
				return err
			}

			printRecords(records)

			if out != "" {
				if err = research.SaveRecords(out, records); err != nil {
					return err
				}
				slog.Info("records written", "path", out, "records", len(records))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "sweep YAML path (required)")
	cmd.Flags().StringVar(&out, "out", "", "optional output CSV for the records")

	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("marking config required: %v", err))
	}

	return cmd
}
