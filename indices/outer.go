package indices

import (
	"context"

	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/ilp"
)

// itemSpace is one removal granularity: a set of candidate items with a
// per-item cost, a way to translate a discovered cycle into the row of
// items that would break it, and a way to translate a chosen item subset
// back into the edge mask and DFS residual cost used to look for cycles
// the subset does not yet break.
type itemSpace struct {
	cost []float64

	rowFor func(cycleEdges []int32) []int32

	residualMask func(selected []bool) graphbuild.EdgeMask
	residualCost func(selected []bool) cycles.ResidualCost

	// weakFallback additionally probes, once CriticalDFS reports no strict
	// cycle, for elementary cycles under the mask that contain at least one
	// strict edge, per spec's Houtman-Maks/Swaps "Johnson fallback" note.
	// Optional; nil for indices that don't need it.
	weakFallback func(g *graphbuild.Graph, mask graphbuild.EdgeMask) [][]int32
}

// solveCover runs the shared cycle-cover outer loop: seed cheap length-1/2
// cycles, then find cycles surviving under the current selection's residual
// mask, add them as covering rows, resolve the binary program, repeat
// until none survive. It terminates because every non-terminal iteration
// strictly grows the row set.
func solveCover(ctx context.Context, g *graphbuild.Graph, sp *itemSpace) ([]bool, float64, error) {
	maxIter := 5*g.T + 1
	selected := make([]bool, len(sp.cost))

	// Existence DFS gates the whole search: if the graph has no cycle at
	// all (strict or weak), no index computed from it can be nonzero.
	if !cycles.Exists(g, sp.residualMask(selected)) {
		return selected, 0, nil
	}

	rows := seedRows(g, sp)

	for iter := 0; iter < maxIter; iter++ {
		mask := sp.residualMask(selected)

		var found [][]int32
		cycles.CriticalDFS(g, mask, sp.residualCost(selected), func(c []int32) {
			if !isStrict(g, c) {
				return // a weak cycle is not a GARP violation; nothing to cover
			}
			found = append(found, append([]int32(nil), c...))
		})
		if len(found) == 0 && sp.weakFallback != nil {
			found = append(found, sp.weakFallback(g, mask)...)
		}

		before := len(rows)
		for _, c := range found {
			rows = append(rows, sp.rowFor(c))
		}
		if len(rows) == before {
			var objective float64
			for j, on := range selected {
				if on {
					objective += sp.cost[j]
				}
			}

			return selected, objective, nil
		}

		sol, err := ilp.Solve(ctx, &ilp.Problem{Cost: sp.cost, Rows: rows})
		if err != nil {
			return nil, 0, err
		}
		selected = sol.Selected
	}

	return nil, 0, ErrNonconvergence
}

// seedRows converts the cheap length-1/length-2 cycles cycles.ScanLen1 and
// cycles.ScanLen2 find over the unrestricted graph into covering rows for
// sp, per the outer loop's "seed cycles ← cheap length-1/length-2 cycles"
// step: the first ILP solve starts from these instead of waiting for the
// heavier CriticalDFS pass to rediscover them.
func seedRows(g *graphbuild.Graph, sp *itemSpace) [][]int32 {
	full := graphbuild.NewEdgeMask(g.EdgeCount())
	var rows [][]int32

	for _, v := range cycles.ScanLen1(g, full) {
		if e, ok := findEdge(g, v, v); ok {
			rows = append(rows, sp.rowFor([]int32{e}))
		}
	}

	for _, pair := range cycles.ScanLen2(g, full) {
		if edges := pairEdges(g, pair[0], pair[1]); edges != nil {
			rows = append(rows, sp.rowFor(edges))
		}
	}

	return rows
}

// pairEdges returns the v→u and u→v edge indices, in that order, or nil if
// either direction is missing.
func pairEdges(g *graphbuild.Graph, v, u int32) []int32 {
	vu, ok1 := findEdge(g, v, u)
	uv, ok2 := findEdge(g, u, v)
	if !ok1 || !ok2 {
		return nil
	}

	return []int32{vu, uv}
}

// findEdge returns the index of edge v→u, if present.
func findEdge(g *graphbuild.Graph, v, u int32) (int32, bool) {
	lo, hi := g.Out(int(v))
	for i := lo; i < hi; i++ {
		if g.Head[i] == u {
			return i, true
		}
	}

	return 0, false
}

// edgeSources maps every edge index to its source vertex, built once per
// graph since neither Head nor Weight carries the source directly.
func edgeSources(g *graphbuild.Graph) []int32 {
	src := make([]int32, g.EdgeCount())
	for v := 0; v < g.T; v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			src[i] = int32(v)
		}
	}

	return src
}

// cycleVertices returns the distinct vertices a cycle's edges pass through,
// derived as each edge's source (the previous edge's head, or the closing
// edge's head for the first one walked).
func cycleVertices(g *graphbuild.Graph, src []int32, cycleEdges []int32) []int32 {
	seen := make(map[int32]bool, len(cycleEdges))
	var out []int32
	for _, e := range cycleEdges {
		v := src[e]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}

// weakJohnsonFallback probes for elementary cycles under mask that contain
// at least one strict edge, via an unbounded (remove=false) Johnson pass.
// Used by Houtman-Maks and Swaps to catch cycles a cost-driven CriticalDFS
// pass can leave behind when several edges tie at residual cost.
func weakJohnsonFallback(g *graphbuild.Graph, mask graphbuild.EdgeMask) [][]int32 {
	var out [][]int32
	cycles.Johnson(g, mask.Clone(), false, func(edges []int32, strict bool) {
		if strict {
			out = append(out, append([]int32(nil), edges...))
		}
	})

	return out
}

func isStrict(g *graphbuild.Graph, cycleEdges []int32) bool {
	for _, e := range cycleEdges {
		if g.Weight[e] > 0 {
			return true
		}
	}

	return false
}

func dedupeInt32(xs []int32) []int32 {
	seen := make(map[int32]bool, len(xs))
	out := xs[:0]
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}

	return out
}
