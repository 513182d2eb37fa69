package indices

import (
	"context"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// HoutmanMaks computes the Houtman-Maks index: the minimum fraction of
// periods that must be dropped to make the remaining data GARP-consistent,
// via vertex-removal covering (cost 1 per vertex) over the cycle-cover
// outer loop, divided by T.
func HoutmanMaks(ctx context.Context, g *graphbuild.Graph) (float64, error) {
	src := edgeSources(g)

	cost := make([]float64, g.T)
	for t := range cost {
		cost[t] = 1
	}

	sp := &itemSpace{
		cost: cost,
		rowFor: func(cycleEdges []int32) []int32 {
			return cycleVertices(g, src, cycleEdges)
		},
		residualMask: func(selected []bool) graphbuild.EdgeMask {
			mask := graphbuild.NewEdgeMask(g.EdgeCount())
			for i := range g.Head {
				if selected[g.Head[i]] {
					mask.Set(i)
				}
			}

			return mask
		},
		residualCost: func(selected []bool) cycles.ResidualCost {
			return func(idx int32) float64 { return g.Weight[idx] }
		},
		weakFallback: weakJohnsonFallback,
	}

	_, objective, err := solveCover(ctx, g, sp)
	if err != nil {
		return 0, err
	}

	return objective / float64(g.T), nil
}
