package cycles

import (
	"math/rand"
	"testing"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
	"github.com/stretchr/testify/require"
)

// seedDet is a deterministic seed for the randomized property tests below.
const seedDet = int64(42)

func mustGraph(t *testing.T, p, q [][]float64) *graphbuild.Graph {
	t.Helper()
	P, err := matrix.NewDenseFromRows(p)
	require.NoError(t, err)
	Q, err := matrix.NewDenseFromRows(q)
	require.NoError(t, err)
	g, err := graphbuild.Build(P, Q)
	require.NoError(t, err)

	return g
}

func noMask(g *graphbuild.Graph) graphbuild.EdgeMask {
	return graphbuild.NewEdgeMask(g.EdgeCount())
}

func TestExistsOnDAG(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	require.False(t, Exists(g, noMask(g)))
}

func TestExistsOnStrictCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	require.True(t, Exists(g, noMask(g)))
}

// Afriat's estimate on the classical 2-cycle equals the shared edge weight
// of 0.2 (both directions carry the same weight).
func TestAfriatDFSClassicalCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	e := AfriatDFS(g, noMask(g))
	require.InDelta(t, 0.2, e, 1e-9)
}

func TestAfriatDFSAcyclicIsZero(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	require.Equal(t, 0.0, AfriatDFS(g, noMask(g)))
}

// CriticalDFS under plain-weight residual removes exactly one edge of the
// 2-cycle (both weigh 0.2, ties broken by edge index) and leaves the graph
// acyclic.
func TestCriticalDFSBreaksCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	mask := noMask(g)
	var found [][]int32
	CriticalDFS(g, mask, func(idx int32) float64 { return g.Weight[idx] }, func(cycle []int32) {
		found = append(found, append([]int32(nil), cycle...))
	})
	require.Len(t, found, 1)
	require.Len(t, found[0], 2)
	require.False(t, Exists(g, mask))
}

func TestScanLen2FindsClassicalCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	pairs := ScanLen2(g, noMask(g))
	require.Len(t, pairs, 1)
	require.Equal(t, [2]int32{0, 1}, pairs[0])
}

func TestScanLen1EmptyOnBaseGraph(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	require.Empty(t, ScanLen1(g, noMask(g)))
}

func TestJohnsonFindsClassicalCycleOnce(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	mask := noMask(g)
	var cycles [][]int32
	var strictFlags []bool
	Johnson(g, mask, false, func(edges []int32, strict bool) {
		cycles = append(cycles, append([]int32(nil), edges...))
		strictFlags = append(strictFlags, strict)
	})
	require.Len(t, cycles, 1)
	require.True(t, strictFlags[0])
}

func TestJohnsonWithRemovalBreaksTheCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	mask := noMask(g)
	Johnson(g, mask, true, func(edges []int32, strict bool) {})
	require.False(t, Exists(g, mask))
}

func TestJohnsonFindsWeakCycleWithoutRemoval(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1}, {1, 1}}, [][]float64{{1, 2}, {1, 0}})
	mask := noMask(g)
	var strictFlags []bool
	Johnson(g, mask, true, func(edges []int32, strict bool) {
		strictFlags = append(strictFlags, strict)
	})
	require.Len(t, strictFlags, 1)
	require.False(t, strictFlags[0])
	// A weak cycle is recorded but never removed.
	require.True(t, Exists(g, mask))
}

func TestJohnsonNoneOnAcyclicGraph(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	mask := noMask(g)
	var count int
	Johnson(g, mask, false, func(edges []int32, strict bool) { count++ })
	require.Equal(t, 0, count)
}

// randomGraph draws a G×T (P,Q) pair with positive prices and non-negative
// quantities, retrying on the rare degenerate draw that Build rejects
// (e.g. a period with zero income).
func randomGraph(t *testing.T, rng *rand.Rand, g, tPeriods int) *graphbuild.Graph {
	t.Helper()
	for {
		pRows := make([][]float64, g)
		qRows := make([][]float64, g)
		for i := 0; i < g; i++ {
			pRows[i] = make([]float64, tPeriods)
			qRows[i] = make([]float64, tPeriods)
			for j := 0; j < tPeriods; j++ {
				pRows[i][j] = 0.1 + rng.Float64()*9.9
				qRows[i][j] = rng.Float64() * 10
			}
		}
		P, err := matrix.NewDenseFromRows(pRows)
		require.NoError(t, err)
		Q, err := matrix.NewDenseFromRows(qRows)
		require.NoError(t, err)
		graph, err := graphbuild.Build(P, Q)
		if err != nil {
			continue
		}

		return graph
	}
}

// bruteForceAfriat enumerates every elementary cycle via Johnson (no
// removal) and returns the max over those cycles of the minimum edge
// weight on the cycle, matching Afriat's index's definition directly
// rather than through AfriatDFS's single-pass machinery.
func bruteForceAfriat(g *graphbuild.Graph) float64 {
	mask := graphbuild.NewEdgeMask(g.EdgeCount())
	best := 0.0
	Johnson(g, mask, false, func(edges []int32, strict bool) {
		m := g.Weight[edges[0]]
		for _, e := range edges[1:] {
			if g.Weight[e] < m {
				m = g.Weight[e]
			}
		}
		if m > best {
			best = m
		}
	})

	return best
}

// AfriatDFS must equal the brute-force max-min over every elementary cycle
// found by Johnson's enumeration, for any graph — not just the hand-picked
// examples above (spec §8's mandated randomized/brute-force property test).
func TestAfriatDFSMatchesBruteForceJohnson(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 500; trial++ {
		tPeriods := 2 + rng.Intn(5) // T in [2,6]
		g := 1 + rng.Intn(3)        // G in [1,3]
		graph := randomGraph(t, rng, g, tPeriods)

		got := AfriatDFS(graph, graphbuild.NewEdgeMask(graph.EdgeCount()))
		want := bruteForceAfriat(graph)
		require.InDeltaf(t, want, got, 1e-9, "trial %d: T=%d G=%d", trial, tPeriods, g)
	}
}
