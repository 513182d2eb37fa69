package graphbuild

import "sync"

// Graph is the immutable, CSR-encoded revealed-preference graph: one vertex
// per observation period, edge v→u present iff bundle u was affordable
// under v's prices and budget.
//
// Storage: out-edges of vertex v occupy Head[Offsets[v]:Offsets[v+1]] and
// Weight at the same indices. The layout never changes after Build returns;
// every downstream algorithm (SCC, cycle search, ILP adapter, index
// solvers) treats Graph as read-only and expresses subgraph restriction via
// an EdgeMask rather than mutating these slices.
type Graph struct {
	// T is the number of observation periods (vertices).
	T int

	// Offsets has length T+1; Offsets[0]=0, Offsets[T]=len(Head).
	Offsets []int32

	// Head[i] is the destination vertex of edge i.
	Head []int32

	// Weight[i] is the normalized cost of edge i, in [0,1].
	Weight []float64

	// Income holds w_t = P_t·Q_t for each period, used by percentile
	// scoring and diagnostics.
	Income []float64

	revOnce sync.Once
	rev     *reverseGraph // lazily built, guarded by revOnce
}

// Out returns the half-open range of edge indices belonging to vertex v's
// out-edges: Head[lo:hi], Weight[lo:hi].
func (g *Graph) Out(v int) (lo, hi int32) {
	return g.Offsets[v], g.Offsets[v+1]
}

// OutDegree returns the number of out-edges of vertex v.
func (g *Graph) OutDegree(v int) int {
	lo, hi := g.Out(v)

	return int(hi - lo)
}

// EdgeCount returns the total number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.Head)
}

// EdgeMask restricts traversal to a subset of edges without mutating the
// underlying Graph: bit i set means edge i is removed (unavailable).
// Every SCC, DFS, and Johnson routine in this module accepts an EdgeMask
// instead of a filtered copy of the graph, per the "bitmask-based subgraph
// restriction" design note: it keeps the CSR immutable through an entire
// solve.
type EdgeMask []uint64

// NewEdgeMask returns a mask with room for n edges, all initially clear
// (i.e. no edges removed).
func NewEdgeMask(n int) EdgeMask {
	return make(EdgeMask, (n+63)/64)
}

// Test reports whether edge i is removed.
func (m EdgeMask) Test(i int) bool {
	if len(m) == 0 {
		return false
	}

	return m[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set marks edge i as removed.
func (m EdgeMask) Set(i int) {
	m[i>>6] |= 1 << (uint(i) & 63)
}

// Clear marks edge i as present again.
func (m EdgeMask) Clear(i int) {
	m[i>>6] &^= 1 << (uint(i) & 63)
}

// Clone returns an independent copy of m.
func (m EdgeMask) Clone() EdgeMask {
	out := make(EdgeMask, len(m))
	copy(out, m)

	return out
}
