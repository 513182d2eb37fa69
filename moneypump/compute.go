package moneypump

import (
	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// Compute enumerates every elementary cycle of g and averages the
// money-pump ratio of each strict one (spec §4.8). This can be exponential
// in g.T since it is built on an unbounded Johnson enumeration; callers
// with large T should expect this and budget accordingly.
func Compute(g *graphbuild.Graph) *Stats {
	mask := graphbuild.NewEdgeMask(g.EdgeCount())

	var sumAvg, sumNorm float64
	var count int64

	cycles.Johnson(g, mask, false, func(edges []int32, strict bool) {
		if !strict {
			return
		}

		n := len(edges)
		t := g.Head[edges[n-1]] // the cycle's start vertex
		var numer, denom, normSum float64
		for _, e := range edges {
			w := g.Weight[e]
			inc := g.Income[t]
			numer += w * inc
			denom += inc
			normSum += w
			t = g.Head[e]
		}

		sumAvg += numer / denom
		sumNorm += normSum / float64(n)
		count++
	})

	if count == 0 {
		return &Stats{}
	}

	return &Stats{
		AverageMPI:    sumAvg / float64(count),
		NormalizedMPI: sumNorm / float64(count),
		Count:         count,
	}
}
