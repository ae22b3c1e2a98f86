// Package research - CSV export of sweep records.
package research

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column layout of exported sweeps.
var csvHeader = []string{
	"run_id", "mode", "m", "n", "runs",
	"greedy_cost", "best_cost", "mean_cost", "std_cost",
	"best_ms", "mean_ms", "std_ms",
}

// WriteRecords emits records as CSV with a header row.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("research: writing csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.RunID,
			rec.Mode,
			strconv.Itoa(rec.M),
			strconv.Itoa(rec.N),
			strconv.Itoa(rec.Runs),
			strconv.FormatInt(rec.GreedyCost, 10),
			strconv.FormatInt(rec.Cost.Best, 10),
			ftoa(rec.Cost.Mean),
			ftoa(rec.Cost.Std),
			ftoa(rec.TimeMs.Best),
			ftoa(rec.TimeMs.Mean),
			ftoa(rec.TimeMs.Std),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("research: writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// SaveRecords writes records to the file at path.
func SaveRecords(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("research: create %s: %w", path, err)
	}

	if err = WriteRecords(f, records); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
