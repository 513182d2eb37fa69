// Package ilp adapts a small binary covering problem
//
//	min c·x   s.t.   A x ≤ -1 (elementwise),  x ∈ {0,1}^N
//
// where every row of A has entries in {-1,0} — i.e. "at least one of these
// candidate removals must be chosen" — to an exact branch-and-bound search.
// Rows are stored sparsely (the indices with a -1 entry) since A is
// overwhelmingly zero: each row comes from one discovered cycle.
//
// There is no third-party BIP/MILP solver in the surrounding stack, so this
// is a hand-rolled oracle, grounded on the branch-and-bound engine used for
// exact TSP search: a dedicated engine struct, deterministic branching
// order, an admissible lower bound, and sparse deadline checks every 4096
// node events.
package ilp
