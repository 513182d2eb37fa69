package indices

import (
	"context"
	"fmt"

	"github.com/revealedpref/garp/graphbuild"
)

// Measures evaluates all six indices over g at every α in alphas, in the
// order spec.md §6 lays the flattened value vector out in.
func Measures(ctx context.Context, g *graphbuild.Graph, alphas []float64) (*Values, error) {
	hm, err := HoutmanMaks(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("indices: houtman-maks: %w", err)
	}
	sw, err := Swaps(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("indices: swaps: %w", err)
	}

	v := &Values{
		Afriat:   Afriat(g),
		HM:       hm,
		Swaps:    sw,
		PerAlpha: make([]AlphaTriple, len(alphas)),
	}

	for i, alpha := range alphas {
		varian, err := Varian(ctx, g, alpha)
		if err != nil {
			return nil, fmt.Errorf("indices: varian(%g): %w", alpha, err)
		}
		inv, err := InvVarian(ctx, g, alpha)
		if err != nil {
			return nil, fmt.Errorf("indices: invvarian(%g): %w", alpha, err)
		}
		nmci, err := NMCI(ctx, g, alpha)
		if err != nil {
			return nil, fmt.Errorf("indices: nmci(%g): %w", alpha, err)
		}
		v.PerAlpha[i] = AlphaTriple{Varian: varian, InvVarian: inv, NMCI: nmci}
	}

	return v, nil
}
