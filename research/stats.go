package research

import "math"

// CostStats summarizes the final costs of repeated runs of one case.
type CostStats struct {
	N    int
	Best int64
	Mean float64
	Std  float64
}

// calcCostStats reduces per-run final costs to best/mean and the sample
// standard deviation (n−1 denominator; zero for fewer than two samples).
func calcCostStats(values []int64) CostStats {
	s := CostStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += float64(v)
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)

	return s
}

// DurationStats summarizes wall times (milliseconds) of repeated runs.
type DurationStats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

// calcDurationStats mirrors calcCostStats for float64 millisecond samples.
func calcDurationStats(values []float64) DurationStats {
	s := DurationStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += v
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := v - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = best
	s.Mean = mean
	s.Std = math.Sqrt(variance)

	return s
}
