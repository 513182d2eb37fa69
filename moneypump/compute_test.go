package moneypump

import (
	"testing"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
	"github.com/stretchr/testify/require"
)

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

func TestComputeAcyclicIsZero(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	stats := Compute(g)
	require.Equal(t, int64(0), stats.Count)
	require.Equal(t, 0.0, stats.AverageMPI)
}

// The classical 2-cycle has both directions at weight 0.2 and equal income
// (both periods have income 5), so both the average and normalized MPI
// collapse to exactly 0.2.
func TestComputeClassicalCycle(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	stats := Compute(g)
	require.Equal(t, int64(1), stats.Count)
	require.InDelta(t, 0.2, stats.AverageMPI, 1e-9)
	require.InDelta(t, 0.2, stats.NormalizedMPI, 1e-9)
}

func TestComputeWeakCycleNotCounted(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1}, {1, 1}}, [][]float64{{1, 2}, {1, 0}})
	stats := Compute(g)
	require.Equal(t, int64(0), stats.Count)
}
