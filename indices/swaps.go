package indices

import (
	"context"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// Swaps computes the Swaps index: the minimum number of edges (choice
// comparisons) that must be dropped to make the data GARP-consistent, via
// edge-removal covering (cost 1 per edge), divided by T.
func Swaps(ctx context.Context, g *graphbuild.Graph) (float64, error) {
	cost := make([]float64, g.EdgeCount())
	for i := range cost {
		cost[i] = 1
	}

	sp := &itemSpace{
		cost: cost,
		rowFor: func(cycleEdges []int32) []int32 {
			return append([]int32(nil), cycleEdges...)
		},
		residualMask: func(selected []bool) graphbuild.EdgeMask {
			mask := graphbuild.NewEdgeMask(g.EdgeCount())
			for i, on := range selected {
				if on {
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
