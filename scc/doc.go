// Package scc computes strongly connected components of a graphbuild.Graph
// under an optional edge mask, in two flavors:
//
//   - Tarjan: the full SCC partition of the graph, iterative (explicit
//     stack) to avoid recursion-depth limits on large T, per spec §9.
//     Trivial components (a single vertex with no self-loop) are labeled 0
//     and skipped by callers; nontrivial components are numbered 1..K.
//   - MinVertexSCC: a restricted search used by Johnson's cycle enumerator
//     (package cycles). Considers only vertices ≥ s and edges not removed
//     by the given mask, and returns the single nontrivial component
//     reachable from s whose minimum vertex is smallest, with that minimum
//     vertex placed last — mirroring gonum topo's johnsonGraph.sccSubGraph /
//     leastVertexIndex pattern (see other_examples/kubernetes-kubernetes__johnson_cycles.go).
//
// Complexity: O(V+E) per call, using Tarjan's algorithm (1972).
package scc
