package indices

import (
	"context"
	"math"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// NMCI computes the Normalized Minimum-Cost Index at α: edge-removal
// covering with cost w(i)^α per edge, no per-vertex reordering.
func NMCI(ctx context.Context, g *graphbuild.Graph, alpha float64) (float64, error) {
	cost := make([]float64, g.EdgeCount())
	for i, w := range g.Weight {
		cost[i] = math.Pow(w, alpha)
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
			return func(idx int32) float64 { return cost[idx] }
		},
	}

	_, objective, err := solveCover(ctx, g, sp)
	if err != nil {
		return 0, err
	}

	return objective, nil
}
