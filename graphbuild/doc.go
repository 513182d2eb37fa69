// Package graphbuild turns a price matrix P and a quantity matrix Q into the
// weighted revealed-preference graph used by every downstream algorithm in
// this module.
//
// What:
//   - Graph: a CSR (compressed sparse row) directed graph with one vertex
//     per observation period and an edge v→u whenever bundle u was
//     affordable under v's prices and budget. Edge weight is the normalized
//     cost of preferring v over u; 0 means a weak (budget-tight) preference,
//     >0 means a strict one.
//   - Reverse: a lazily built, cached transpose CSR; InEdges reads it and
//     returns a vertex's in-edges ordered by weight, as the inverse-Varian
//     index requires.
//
// Why:
//   - Every index solver, SCC pass, and cycle finder downstream operates on
//     this single immutable representation; building it once keeps the rest
//     of the pipeline free of P/Q-specific arithmetic.
//
// Complexity:
//   - Build: O(T²G) time (T² candidate edges, each an O(G) dot product via
//     matrix.ColDot), O(T²) worst-case edges, memory.
//   - Reverse: O(E) time and memory, computed once and cached.
//
// Errors:
//   - ErrInvalidShape, ErrNonPositivePrice, ErrNegativeQuantity,
//     ErrZeroIncome, ErrNonFinite (re-exported concept from matrix).
package graphbuild
