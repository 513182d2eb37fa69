package scc

import "github.com/revealedpref/garp/graphbuild"

// HasStrictCycle reports whether g contains any elementary cycle with at
// least one strict (weight>0) edge — the GARP-violation test (spec §3's
// "no cycle containing a strict edge"). A strict edge v→u lies on a cycle
// iff a path already exists from u back to v, i.e. v and u share a
// nontrivial SCC, or v==u for a strict self-loop.
func HasStrictCycle(g *graphbuild.Graph, mask graphbuild.EdgeMask) bool {
	part := Tarjan(g, mask)

	for v := 0; v < g.T; v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			if mask.Test(int(i)) || g.Weight[i] <= 0 {
				continue
			}
			u := g.Head[i]
			if int32(v) == u || (part.Comp[v] != 0 && part.Comp[v] == part.Comp[u]) {
				return true
			}
		}
	}

	return false
}
