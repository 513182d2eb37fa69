package garp

import (
	"context"
	"fmt"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/indices"
	"github.com/revealedpref/garp/matrix"
	"github.com/revealedpref/garp/symmetric"
)

// RationalityMeasures computes Afriat, Houtman-Maks, Swaps, and the
// Varian-α/InvVarian-α/NMCI-α triples for each α in alphas, from a P,Q
// observation panel (spec §6's rationality_measures).
func RationalityMeasures(ctx context.Context, P, Q *matrix.Dense, alphas []float64) (*Values, error) {
	g, err := graphbuild.Build(P, Q)
	if err != nil {
		return nil, fmt.Errorf("garp: %w", err)
	}

	return indices.Measures(ctx, g, alphas)
}

// RationalityMeasuresSymmetric is RationalityMeasures under the assumption
// that the rationalizing utility is symmetric in the goods (spec §4.6):
// every index is recomputed over the permutation-augmented CSR rather than
// the base graph.
func RationalityMeasuresSymmetric(ctx context.Context, P, Q *matrix.Dense, alphas []float64, opts ...symmetric.Option) (*Values, error) {
	g, err := graphbuild.Build(P, Q)
	if err != nil {
		return nil, fmt.Errorf("garp: %w", err)
	}

	aug, err := symmetric.Augment(g, P, Q, opts...)
	if err != nil {
		return nil, fmt.Errorf("garp: %w", err)
	}

	return indices.Measures(ctx, aug, alphas)
}
