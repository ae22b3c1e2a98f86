package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/schedkit/schedkit/research"
	"github.com/schedkit/schedkit/sched"
)

// printSolution renders the final schedule and its metrics.
func printSolution(sol *sched.ScheduleSolution, elapsed time.Duration) {
	inst := sol.Instance()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Processor", "Jobs (in order)", "Load"})
	table.SetAutoWrapText(false)

	var (
		m    int
		load int64
		job  int
	)
	for m = 0; m < inst.M; m++ {
		queue := sol.Assignment()[m]

		load = 0
		parts := make([]string, 0, len(queue))
		for _, job = range queue {
			load += inst.P[job]
			parts = append(parts, strconv.Itoa(job))
		}

		table.Append([]string{
			fmt.Sprintf("P%d", m),
			strings.Join(parts, " "),
			strconv.FormatInt(load, 10),
		})
	}
	table.Render()

	fmt.Printf("cost (sum of completion times): %d\n", sol.Cost())
	fmt.Printf("makespan:                       %d\n", sol.Makespan())
	fmt.Printf("elapsed:                        %s\n", elapsed.Round(time.Millisecond))
}

// printRecords renders a research summary table.
func printRecords(records []research.Record) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Mode", "M", "N", "Runs", "Greedy", "Best", "Mean", "Std", "Mean ms"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoWrapText(false)

	for _, rec := range records {
		table.Append([]string{
			rec.Mode,
			strconv.Itoa(rec.M),
			strconv.Itoa(rec.N),
			strconv.Itoa(rec.Runs),
			strconv.FormatInt(rec.GreedyCost, 10),
			strconv.FormatInt(rec.Cost.Best, 10),
			fmt.Sprintf("%.1f", rec.Cost.Mean),
			fmt.Sprintf("%.1f", rec.Cost.Std),
			fmt.Sprintf("%.2f", rec.TimeMs.Mean),
		})
	}
	table.Render()
}
