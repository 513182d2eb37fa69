package indices

import (
	"context"
	"math"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// InvVarian computes the Inverse-Varian-α index: Varian's construction
// mirrored onto in-edges — a per-vertex removal threshold on the edges
// terminating at it rather than the edges leaving it (spec §4.5, §9 "do
// not attempt to reuse the forward CSR via transposition tricks").
func InvVarian(ctx context.Context, g *graphbuild.Graph, alpha float64) (float64, error) {
	rowFor := func(cycleEdges []int32) []int32 {
		var items []int32
		for _, e := range cycleEdges {
			y := g.Head[e]
			w := g.Weight[e]
			for _, ie := range graphbuild.InEdges(g, int(y)) {
				if g.Weight[ie] >= w {
					items = append(items, ie)
				}
			}
		}

		return dedupeInt32(items)
	}

	residualMask := func(selected []bool) graphbuild.EdgeMask {
		maxSel := maxSelectedByHead(g, selected)
		mask := graphbuild.NewEdgeMask(g.EdgeCount())
		for i := range g.Head {
			if m := maxSel[g.Head[i]]; m >= 0 && g.Weight[i] <= m {
				mask.Set(i)
			}
		}

		return mask
	}
	residualCost := func(selected []bool) cycles.ResidualCost {
		maxSel := maxSelectedByHead(g, selected)

		return func(idx int32) float64 {
			m := maxSel[g.Head[idx]]
			if m < 0 {
				m = 0
			}
			r := g.Weight[idx] - m
			if r < 0 {
				r = 0
			}

			return r
		}
	}

	if alpha == 0 {
		sp := &itemSpace{cost: append([]float64(nil), g.Weight...), rowFor: rowFor, residualMask: residualMask, residualCost: residualCost}
		selected, _, err := solveCover(ctx, g, sp)
		if err != nil {
			return 0, err
		}

		var sCount int
		product := 1.0
		for i, on := range selected {
			if on {
				sCount++
				product *= g.Weight[i]
			}
		}
		if sCount == 0 {
			return 0, nil
		}

		return (float64(sCount) + math.Pow(product, 1/float64(sCount))) / float64(g.T), nil
	}

	cost := make([]float64, g.EdgeCount())
	for i, w := range g.Weight {
		cost[i] = math.Pow(w, alpha)
	}
	sp := &itemSpace{cost: cost, rowFor: rowFor, residualMask: residualMask, residualCost: residualCost}
	_, objective, err := solveCover(ctx, g, sp)
	if err != nil {
		return 0, err
	}

	return objective, nil
}

// maxSelectedByHead returns, per vertex, the highest weight among its
// selected in-edges, or -1 if none is selected.
func maxSelectedByHead(g *graphbuild.Graph, selected []bool) []float64 {
	out := make([]float64, g.T)
	for i := range out {
		out[i] = -1
	}
	for i, on := range selected {
		if on {
			y := g.Head[i]
			if g.Weight[i] > out[y] {
				out[y] = g.Weight[i]
			}
		}
	}

	return out
}
