package scc

import (
	"github.com/revealedpref/garp/graphbuild"
)

// Component is the result of MinVertexSCC: the chosen nontrivial SCC's
// member vertices, with MinVertex placed last (per spec §4.2) so callers
// (Johnson's enumerator) can treat it as the natural circuit root.
type Component struct {
	Members   []int32
	MinVertex int32
}

// MinVertexSCC restricts the search to vertices ≥ s and to edges not
// removed by mask, computes the SCC partition of that restriction, and
// returns the single nontrivial component containing the smallest vertex
// value across all surviving nontrivial components — mirroring Johnson's
// "A_k = adjacency structure of strong component with least vertex in
// subgraph induced by {s,...,n}" (grounded on
// other_examples/kubernetes-kubernetes__johnson_cycles.go's sccSubGraph /
// leastVertexIndex). Returns (nil, false) if no nontrivial component
// exists in the restriction.
func MinVertexSCC(g *graphbuild.Graph, s int32, mask graphbuild.EdgeMask) (*Component, bool) {
	restricted := restrictMask(g, s, mask)
	part := tarjanFrom(g, s, restricted)

	if len(part.Members) == 0 {
		return nil, false
	}

	best := part.Members[0]
	bestMin := minOf(best)
	for _, members := range part.Members[1:] {
		if m := minOf(members); m < bestMin {
			bestMin = m
			best = members
		}
	}

	out := make([]int32, 0, len(best))
	for _, v := range best {
		if v != bestMin {
			out = append(out, v)
		}
	}
	out = append(out, bestMin)

	return &Component{Members: out, MinVertex: bestMin}, true
}

func minOf(vs []int32) int32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// restrictMask returns a mask that additionally removes every edge whose
// head is < s, on top of the caller-supplied mask. Vertices < s are simply
// never visited by tarjanFrom, so masking their incoming edges is enough to
// realize the "vertices ≥ s" restriction without materializing a subgraph.
func restrictMask(g *graphbuild.Graph, s int32, mask graphbuild.EdgeMask) graphbuild.EdgeMask {
	out := graphbuild.NewEdgeMask(g.EdgeCount())
	if mask != nil {
		copy(out, mask)
	}
	for v := 0; v < int(s); v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			out.Set(int(i))
		}
	}
	for i, h := range g.Head {
		if h < s {
			out.Set(i)
		}
	}

	return out
}

// tarjanFrom runs a full Tarjan pass under mask and keeps only the
// components whose vertices are all ≥ s. Vertices below s have every edge
// masked off by restrictMask, so they only ever form trivial components,
// which Tarjan does not report.
func tarjanFrom(g *graphbuild.Graph, s int32, mask graphbuild.EdgeMask) *Partition {
	full := Tarjan(g, mask)
	// Drop any component that (degenerately) contains a vertex < s; cannot
	// happen given restrictMask, but keep the invariant explicit and cheap.
	filtered := make([][]int32, 0, len(full.Members))
	for _, members := range full.Members {
		keep := true
		for _, v := range members {
			if v < s {
				keep = false

				break
			}
		}
		if keep {
			filtered = append(filtered, members)
		}
	}

	return &Partition{Members: filtered}
}
