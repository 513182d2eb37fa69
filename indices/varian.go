package indices

import (
	"context"
	"math"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// Varian computes the Varian-α index: per-vertex removal threshold e_t on
// out-edges, cost w(i)^α for committing e_t to out-edge i's weight (which
// also covers every cheaper out-edge of the same vertex). At α=0 the power
// cost collapses every threshold to 1 and loses the threshold's magnitude,
// so the hybrid formula (spec §4.5) is used instead: it is computed from
// the same covering solution found using plain weight as cost, since the
// minimal sufficient threshold per vertex does not depend on which
// monotonic power of weight is used to find it.
func Varian(ctx context.Context, g *graphbuild.Graph, alpha float64) (float64, error) {
	src := edgeSources(g)

	rowFor := func(cycleEdges []int32) []int32 {
		var items []int32
		for _, e := range cycleEdges {
			t := src[e]
			w := g.Weight[e]
			for _, oe := range graphbuild.PerVertexOrder(g, int(t)) {
				if g.Weight[oe] >= w {
					items = append(items, oe)
				}
			}
		}

		return dedupeInt32(items)
	}

	residualMask := func(selected []bool) graphbuild.EdgeMask {
		maxSel := maxSelectedByVertex(g, src, selected)
		mask := graphbuild.NewEdgeMask(g.EdgeCount())
		for i := range g.Head {
			if m := maxSel[src[i]]; m >= 0 && g.Weight[i] <= m {
				mask.Set(i)
			}
		}

		return mask
	}
	residualCost := func(selected []bool) cycles.ResidualCost {
		maxSel := maxSelectedByVertex(g, src, selected)

		return func(idx int32) float64 {
			m := maxSel[src[idx]]
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

// maxSelectedByVertex returns, per vertex, the highest weight among its
// selected out-edges, or -1 if none is selected.
func maxSelectedByVertex(g *graphbuild.Graph, src []int32, selected []bool) []float64 {
	out := make([]float64, g.T)
	for i := range out {
		out[i] = -1
	}
	for i, on := range selected {
		if on {
			t := src[i]
			if g.Weight[i] > out[t] {
				out[t] = g.Weight[i]
			}
		}
	}

	return out
}
