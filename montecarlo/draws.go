package montecarlo

import (
	"math/rand"

	"github.com/revealedpref/garp/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampleBudget draws one Q̃ whose column t is uniform on the simplex
// B(p_t, w_t) = {x ≥ 0 : p_t·x = w_t}: G i.i.d. Exp(1) draws normalized to
// sum 1 give uniform income shares, which are then converted to a bundle
// by dividing componentwise by price (spec §4.7).
func sampleBudget(P *matrix.Dense, income []float64, rng *rand.Rand) (*matrix.Dense, error) {
	G, T := P.Rows(), P.Cols()
	Q, err := matrix.NewDense(G, T)
	if err != nil {
		return nil, err
	}

	shares := make([]float64, G)
	for t := 0; t < T; t++ {
		var sum float64
		for g := 0; g < G; g++ {
			e := distuv.Exponential{Rate: 1, Src: rng}
			shares[g] = e.Rand()
			sum += shares[g]
		}
		for g := 0; g < G; g++ {
			Q.Set(g, t, shares[g]/sum*income[t]/P.At(g, t))
		}
	}

	return Q, nil
}
