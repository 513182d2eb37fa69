// Package indices implements the six GARP rationality indices — Afriat,
// Houtman-Maks, Swaps, Varian-α, Inverse-Varian-α, and the Normalized
// Minimum-Cost Index-α — over a graphbuild.Graph.
//
// Afriat is computed directly by cycles.AfriatDFS. The other five share a
// common cycle-cover outer loop (solveCover, in outer.go): seed a
// candidate removal set, solve the binary covering program via package
// ilp, check under the resulting residual mask whether any cycle survives
// via cycles.CriticalDFS, and repeat until none do. What differs between
// the five is only the "removal granularity" — vertex (Houtman-Maks), edge
// (Swaps, NMCI-α), or per-vertex weight threshold on out- or in-edges
// (Varian-α, InvVarian-α) — captured by the itemSpace each solver builds.
//
// This module runs the outer loop once over the whole graph rather than
// dispatching one independent loop per nontrivial SCC: since elementary
// cycles never cross an SCC boundary, a single global covering program
// decomposes into the same independent per-component subproblems a
// per-SCC dispatch would solve separately, and sums to the same objective.
package indices
