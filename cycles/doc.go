// Package cycles implements the depth-first cycle finders shared by every
// rationality index: plain existence, a critical-cycle DFS driven by an
// index-specific residual cost, Afriat's specialized maximin walk, cheap
// length-1/length-2 scanners, and a Johnson (1975) elementary-cycle
// enumerator. All of them operate on an immutable graphbuild.Graph through
// a graphbuild.EdgeMask rather than a filtered copy of the graph.
//
// Complexity: Exists is an O(V+E) single pass. AfriatDFS can revisit a
// vertex after unwinding it on a cycle closure, so it is not bounded by a
// single O(V+E) pass. CriticalDFS is
// O((V+E)·K) where K is the number of cycles it breaks, since each removal
// restarts the search only from the removed edge's source, not from
// scratch. Johnson is O((V+E)(C+1)) where C is the number of elementary
// cycles found, per the original paper.
package cycles
