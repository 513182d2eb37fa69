package graphbuild

import (
	"fmt"
	"math"
	"sort"

	"github.com/revealedpref/garp/matrix"
)

// Build forms the CSR revealed-preference graph from price matrix P and
// quantity matrix Q, both G×T. Column t of P/Q is the price/bundle at
// period t.
//
// Algorithm (spec §4.1): for every ordered pair (v,u), v≠u, compute
//
//	E[v,u] = P_v·Q_v - P_v·Q_u
//
// An edge v→u exists iff E[v,u] ≥ 0; its weight is E[v,u]/(P_v·Q_v). Edges
// of a given v are emitted contiguously (v is the outer loop), giving CSR
// layout for free.
//
// Errors: ErrInvalidShape if P and Q disagree in shape or G<1/T<1;
// ErrNonFinite if either contains NaN/Inf; ErrNonPositivePrice if any price
// entry is ≤0; ErrNegativeQuantity if any quantity entry is <0; ErrZeroIncome
// if some period's income P_t·Q_t is ≤0.
func Build(P, Q *matrix.Dense) (*Graph, error) {
	if err := validateInputs(P, Q); err != nil {
		return nil, err
	}

	T := P.Cols()

	income := make([]float64, T)
	for v := 0; v < T; v++ {
		income[v] = matrix.ColDot(P, v, Q, v)
		if income[v] <= 0 {
			return nil, fmt.Errorf("graphbuild: %w at period %d: %g", ErrZeroIncome, v, income[v])
		}
	}

	return AssembleCSR(T, income, func(v, u int) (float64, bool) {
		if u == v {
			return 0, false // base graph excludes self-loops unconditionally (spec §3)
		}
		e := income[v] - matrix.ColDot(P, v, Q, u)
		if e < 0 {
			return 0, false
		}

		return clamp01(e / income[v]), true
	}), nil
}

// AssembleCSR builds the CSR edge arrays shared by Build and the symmetric
// extension (package symmetric): for every ordered pair (v,u), including
// u==v, edgeWeight reports whether the edge exists and, if so, its weight.
// Edges are emitted with v as the outer loop so out-edges of a given vertex
// land contiguously, giving CSR layout for free — kept here, rather than
// duplicated by callers, so the emission order and layout stay identical
// across every graph this module builds.
func AssembleCSR(T int, income []float64, edgeWeight func(v, u int) (weight float64, ok bool)) *Graph {
	offsets := make([]int32, T+1)
	var head []int32
	var weight []float64

	for v := 0; v < T; v++ {
		offsets[v] = int32(len(head))
		for u := 0; u < T; u++ {
			w, ok := edgeWeight(v, u)
			if !ok {
				continue
			}
			head = append(head, int32(u))
			weight = append(weight, w)
		}
	}
	offsets[T] = int32(len(head))

	return &Graph{T: T, Offsets: offsets, Head: head, Weight: weight, Income: income}
}

func validateInputs(P, Q *matrix.Dense) error {
	if P.Rows() < 1 || P.Cols() < 1 {
		return fmt.Errorf("%w: P is %dx%d", ErrInvalidShape, P.Rows(), P.Cols())
	}
	if err := matrix.ValidateSameShape(P, Q); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if err := matrix.ValidateFinite(P); err != nil {
		return fmt.Errorf("%w (P)", ErrNonFinite)
	}
	if err := matrix.ValidateFinite(Q); err != nil {
		return fmt.Errorf("%w (Q)", ErrNonFinite)
	}
	if err := matrix.ValidatePositive(P, ErrNonPositivePrice); err != nil {
		return err
	}
	if err := matrix.ValidateNonNegative(Q, ErrNegativeQuantity); err != nil {
		return err
	}

	return nil
}

// PerVertexOrder returns the out-edge indices of vertex v sorted ascending
// by (weight, head), a stable deterministic tie-break used by Varian-α's
// removal-level encoding (spec §4.5, §9 "Deterministic ordering").
func PerVertexOrder(g *Graph, v int) []int32 {
	lo, hi := g.Out(v)
	idx := make([]int32, 0, hi-lo)
	for i := lo; i < hi; i++ {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		wa, wb := g.Weight[idx[a]], g.Weight[idx[b]]
		if wa != wb {
			return wa < wb
		}

		return g.Head[idx[a]] < g.Head[idx[b]]
	})

	return idx
}

// clamp01 guards against accumulated floating error pushing a weight fractionally
// outside [0,1]; used defensively at construction boundaries only.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	if math.IsNaN(x) {
		return 0
	}

	return x
}
