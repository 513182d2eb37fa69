package symmetric

import (
	"testing"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
	"github.com/stretchr/testify/require"
)

// T=1, G=2: a single period can still violate symmetric rationality against
// a relabeling of its own bundle. p=(1,2), x=(1,2): swapping goods gives a
// cheaper reading of the same bundle, producing a strict self-loop of
// weight 0.2 = (5-4)/5.
func TestAugmentSingleObservationSelfLoop(t *testing.T) {
	P, err := matrix.NewDenseFromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	Q, err := matrix.NewDenseFromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	base, err := graphbuild.Build(P, Q)
	require.NoError(t, err)
	require.Equal(t, 0, base.EdgeCount())

	sym, err := Augment(base, P, Q)
	require.NoError(t, err)
	require.Equal(t, 1, sym.EdgeCount())
	require.Equal(t, int32(0), sym.Head[0])
	require.InDelta(t, 0.2, sym.Weight[0], 1e-9)
}

// A symmetric bundle (goods interchangeable, e.g. identical quantities)
// never beats the identity permutation, so no self-loop survives.
func TestAugmentSymmetricBundleNoSelfLoop(t *testing.T) {
	P, err := matrix.NewDenseFromRows([][]float64{{1}, {1}})
	require.NoError(t, err)
	Q, err := matrix.NewDenseFromRows([][]float64{{1}, {1}})
	require.NoError(t, err)
	base, err := graphbuild.Build(P, Q)
	require.NoError(t, err)

	sym, err := Augment(base, P, Q)
	require.NoError(t, err)
	require.Equal(t, 0, sym.EdgeCount())
}

func TestAugmentRejectsTooManyGoods(t *testing.T) {
	rows := make([][]float64, 8)
	for i := range rows {
		rows[i] = []float64{1, 1}
	}
	P, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	Q, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	base, err := graphbuild.Build(P, Q)
	require.NoError(t, err)

	_, err = Augment(base, P, Q)
	require.ErrorIs(t, err, ErrTooManyGoods)
}
