package garp

import (
	"context"

	"github.com/revealedpref/garp/matrix"
	"github.com/revealedpref/garp/montecarlo"
)

// PercentileScore draws n random quantity panels uniform on each period's
// observed budget simplex and compares the observed data's rationality
// measures against the resulting distribution (spec §4.7, §6's
// percentile_score).
func PercentileScore(ctx context.Context, P, Q *matrix.Dense, alphas []float64, n int, opts ...montecarlo.Option) (*montecarlo.Result, error) {
	return montecarlo.PercentileScore(ctx, P, Q, alphas, n, opts...)
}
