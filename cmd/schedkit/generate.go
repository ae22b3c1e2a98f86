package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/schedkit/schedkit/schedio"
)

func newGenerateCmd() *cobra.Command {
	var (
		m    int
		n    int
		pMin int64
		pMax int64
		seed int64
		out  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random problem instance and write it as CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			s := seed
			if s == 0 {
				s = time.Now().UnixNano()
			}

			inst, err := schedio.RandomInstance(m, n, pMin, pMax, rand.New(rand.NewSource(s)))
			if err != nil {
				return err
			}

			if err = schedio.Save(out, inst); err != nil {
				return err
			}

			slog.Info("instance written",
				"path", out, "m", m, "n", n,
				"p_min", pMin, "p_max", pMax, "seed", s,
			)

			return nil
		},
	}

	cmd.Flags().IntVar(&m, "m", 0, "processor count (required)")
	cmd.Flags().IntVar(&n, "n", 0, "job count (required)")
	cmd.Flags().Int64Var(&pMin, "p-min", 1, "minimum processing time")
	cmd.Flags().Int64Var(&pMax, "p-max", 100, "maximum processing time")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 = wall clock)")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (required)")

	for _, flag := range []string{"m", "n", "out"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("marking %s required: %v", flag, err))
		}
	}

	return cmd
}
