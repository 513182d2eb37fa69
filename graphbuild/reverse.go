package graphbuild

import (
	"sort"
)

// reverseGraph is the transposed CSR: in-edges of vertex u contiguous under
// Head[Offsets[u]:Offsets[u+1]], with the originating forward-edge index
// carried alongside so callers can map back into Graph.Weight/EdgeMask.
type reverseGraph struct {
	offsets []int32
	head    []int32 // source vertex of each reverse edge
	fwdIdx  []int32 // index into the forward Head/Weight arrays
}

// Reverse returns the cached reverse adjacency of g, building it on first
// use. Per spec §9 ("Reverse-adjacency for InvVarian... do not attempt to
// reuse the forward CSR via transposition tricks"), this is a real second
// CSR, not a view over the forward one.
func Reverse(g *Graph) *reverseGraph {
	g.revOnce.Do(func() {
		g.rev = buildReverse(g)
	})

	return g.rev
}

func buildReverse(g *Graph) *reverseGraph {
	T := g.T
	inDeg := make([]int32, T)
	for _, h := range g.Head {
		inDeg[h]++
	}
	offsets := make([]int32, T+1)
	for u := 0; u < T; u++ {
		offsets[u+1] = offsets[u] + inDeg[u]
	}
	head := make([]int32, len(g.Head))
	fwdIdx := make([]int32, len(g.Head))
	cursor := make([]int32, T)
	copy(cursor, offsets[:T])

	for v := 0; v < T; v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			u := g.Head[i]
			pos := cursor[u]
			head[pos] = int32(v)
			fwdIdx[pos] = i
			cursor[u]++
		}
	}

	return &reverseGraph{offsets: offsets, head: head, fwdIdx: fwdIdx}
}

// InEdges returns the forward-edge indices of every edge terminating at u
// (i.e. v→u for each such v), sorted ascending by (weight, source vertex)
// exactly as PerVertexOrder sorts out-edges — the ordering InvVarian-α needs
// on the incoming side.
func InEdges(g *Graph, u int) []int32 {
	rev := Reverse(g)
	lo, hi := rev.offsets[u], rev.offsets[u+1]

	type entry struct {
		fwd int32
		src int32
	}
	entries := make([]entry, 0, hi-lo)
	for i := lo; i < hi; i++ {
		entries = append(entries, entry{fwd: rev.fwdIdx[i], src: rev.head[i]})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		wa, wb := g.Weight[entries[a].fwd], g.Weight[entries[b].fwd]
		if wa != wb {
			return wa < wb
		}

		return entries[a].src < entries[b].src
	})

	idx := make([]int32, len(entries))
	for i, e := range entries {
		idx[i] = e.fwd
	}

	return idx
}
