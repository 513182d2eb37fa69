package symmetric

import (
	"fmt"
	"math"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
)

// Augment builds the symmetric-utility extension of the revealed-preference
// graph: for every permutation π of the G goods, it considers affordability
// against π(Q_u) instead of Q_u directly, and keeps the most favorable
// (lowest-cost) permutation per pair. G is guarded by MaxGoods (default 7,
// see WithMaxGoods) since the search is G! per pair.
func Augment(g *graphbuild.Graph, P, Q *matrix.Dense, opts ...Option) (*graphbuild.Graph, error) {
	cfg := newConfig(opts...)
	G := P.Rows()
	if G > cfg.maxGoods {
		return nil, fmt.Errorf("%w: G=%d exceeds MaxGoods=%d", ErrTooManyGoods, G, cfg.maxGoods)
	}

	T := g.T
	minDot := make([][]float64, T)
	for v := 0; v < T; v++ {
		minDot[v] = make([]float64, T)
		for u := 0; u < T; u++ {
			minDot[v][u] = math.Inf(1)
		}
	}

	eachPermutation(G, func(perm []int) {
		for v := 0; v < T; v++ {
			for u := 0; u < T; u++ {
				var dot float64
				for i, pi := range perm {
					dot += P.At(i, v) * Q.At(pi, u)
				}
				if dot < minDot[v][u] {
					minDot[v][u] = dot
				}
			}
		}
	})

	income := g.Income

	return graphbuild.AssembleCSR(T, income, func(v, u int) (float64, bool) {
		e := income[v] - minDot[v][u]
		if e < 0 {
			return 0, false
		}

		w := e / income[v]
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		if u == v && w == 0 {
			// Trivial self-loop: the identity permutation always attains
			// E[v,v]=0, and a non-identity permutation tying it at 0 is
			// just as uninformative. Only a strict (w>0) self-loop, found
			// by some permutation doing strictly better, survives.
			return 0, false
		}

		return w, true
	}), nil
}
