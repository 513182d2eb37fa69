package cycles

import (
	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/scc"
)

// Johnson enumerates every elementary cycle of g restricted by mask, one
// SCC at a time via the "minimum-vertex SCC in a restricted subgraph"
// variant (package scc), following Johnson 1975's circuit/unblock
// structure. onCycle is invoked once per elementary cycle found, in
// discovery order, with the edge indices making up the cycle and whether
// any of them is strict (weight > 0).
//
// When remove is true, the last strict edge on each closing cycle is
// removed from mask as it is found (the "local modification" that lets
// Johnson mop up zero-weight cycles a cost-driven critical DFS can miss);
// weak cycles are reported but nothing is removed. When remove is false
// (Money-Pump's use, §4.8) mask is never mutated.
func Johnson(g *graphbuild.Graph, mask graphbuild.EdgeMask, remove bool, onCycle func(edges []int32, strict bool)) {
	for s := int32(0); s < int32(g.T); {
		comp, found := scc.MinVertexSCC(g, s, mask)
		if !found {
			break
		}

		j := &johnsonWalk{
			g: g, mask: mask, remove: remove, onCycle: onCycle,
			member:   make(map[int32]bool, len(comp.Members)),
			blocked:  make(map[int32]bool, len(comp.Members)),
			blockMap: make(map[int32]map[int32]bool, len(comp.Members)),
			s:        comp.MinVertex,
		}
		for _, v := range comp.Members {
			j.member[v] = true
			j.blockMap[v] = make(map[int32]bool)
		}
		j.circuit(comp.MinVertex)

		s = comp.MinVertex + 1
	}
}

type johnsonWalk struct {
	g       *graphbuild.Graph
	mask    graphbuild.EdgeMask
	remove  bool
	onCycle func(edges []int32, strict bool)

	member   map[int32]bool
	blocked  map[int32]bool
	blockMap map[int32]map[int32]bool
	stackE   []int32
	s        int32
}

func (j *johnsonWalk) circuit(v int32) bool {
	f := false
	j.blocked[v] = true

	lo, hi := j.g.Out(int(v))
	for i := lo; i < hi; i++ {
		if j.mask.Test(int(i)) {
			continue
		}
		w := j.g.Head[i]
		if !j.member[w] {
			continue
		}

		j.stackE = append(j.stackE, i)
		switch {
		case w == j.s:
			j.reportCycle()
			f = true
		case !j.blocked[w]:
			if j.circuit(w) {
				f = true
			}
		}
		j.stackE = j.stackE[:len(j.stackE)-1]
	}

	if f {
		j.unblock(v)
	} else {
		for i := lo; i < hi; i++ {
			if j.mask.Test(int(i)) {
				continue
			}
			w := j.g.Head[i]
			if j.member[w] {
				j.blockMap[w][v] = true
			}
		}
	}

	return f
}

func (j *johnsonWalk) reportCycle() {
	edges := append([]int32(nil), j.stackE...)
	strict := false
	for _, e := range edges {
		if j.g.Weight[e] > 0 {
			strict = true

			break
		}
	}
	j.onCycle(edges, strict)

	if j.remove && strict {
		for k := len(edges) - 1; k >= 0; k-- {
			if j.g.Weight[edges[k]] > 0 {
				j.mask.Set(int(edges[k]))

				break
			}
		}
	}
}

func (j *johnsonWalk) unblock(u int32) {
	j.blocked[u] = false
	for w := range j.blockMap[u] {
		delete(j.blockMap[u], w)
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}
