package scc

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

// A DAG has no nontrivial component at all.
func TestTarjanAcyclicHasNoComponents(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	part := Tarjan(g, graphbuild.NewEdgeMask(g.EdgeCount()))
	require.Equal(t, int32(0), part.Count)
}

// The classical 2-cycle example yields exactly one nontrivial component
// covering both vertices.
func TestTarjanStrictCycleIsOneComponent(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	part := Tarjan(g, graphbuild.NewEdgeMask(g.EdgeCount()))
	require.Equal(t, int32(1), part.Count)
	require.ElementsMatch(t, []int32{0, 1}, part.Members[0])
}

// Masking out every edge of the cycle degrades it back to two trivial
// components.
func TestTarjanRespectsMask(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	mask := graphbuild.NewEdgeMask(g.EdgeCount())
	for i := range g.Weight {
		mask.Set(i)
	}
	part := Tarjan(g, mask)
	require.Equal(t, int32(0), part.Count)
}

func TestMinVertexSCCFindsCycleContainingSmallestVertex(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	comp, found := MinVertexSCC(g, 0, graphbuild.NewEdgeMask(g.EdgeCount()))
	require.True(t, found)
	require.Equal(t, int32(0), comp.MinVertex)
	require.Equal(t, int32(0), comp.Members[len(comp.Members)-1])
	require.ElementsMatch(t, []int32{0, 1}, comp.Members)
}

func TestMinVertexSCCRestrictsToFloor(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 2}, {2, 1}}, [][]float64{{1, 2}, {2, 1}})
	_, found := MinVertexSCC(g, 1, graphbuild.NewEdgeMask(g.EdgeCount()))
	require.False(t, found) // vertex 1 alone, restricted above the cycle's floor, has no cycle
}

func TestMinVertexSCCNoneOnAcyclicGraph(t *testing.T) {
	g := mustGraph(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, [][]float64{{1, 2, 3}, {1, 2, 3}})
	_, found := MinVertexSCC(g, 0, graphbuild.NewEdgeMask(g.EdgeCount()))
	require.False(t, found)
}
