package montecarlo

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ComponentSummary is a descriptive summary of one component of the
// flattened index vector (spec.md §6 layout) across every draw, a
// diagnostic in addition to the exact weak/strict counters PercentileScore
// always returns.
type ComponentSummary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	P90    float64
}

// summarize computes one ComponentSummary per column of perDraw (rows are
// draws, columns are flattened-index components), via
// github.com/montanaflynn/stats rather than hand-rolled accumulation, the
// way jndunlap-gohypo's distribution analyzer does.
func summarize(perDraw [][]float64, k int) ([]ComponentSummary, error) {
	if len(perDraw) == 0 {
		return nil, nil
	}

	out := make([]ComponentSummary, k)
	col := make([]float64, len(perDraw))
	for j := 0; j < k; j++ {
		for i, row := range perDraw {
			col[i] = row[j]
		}

		mean, err := stats.Mean(col)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary mean: %w", err)
		}
		median, err := stats.Median(col)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary median: %w", err)
		}
		stdDev, err := stats.StandardDeviation(col)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary stddev: %w", err)
		}
		min, err := stats.Min(col)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary min: %w", err)
		}
		max, err := stats.Max(col)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary max: %w", err)
		}
		p90, err := stats.Percentile(col, 90)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: summary p90: %w", err)
		}

		out[j] = ComponentSummary{Mean: mean, Median: median, StdDev: stdDev, Min: min, Max: max, P90: p90}
	}

	return out, nil
}
