package garp

import (
	"context"
	"testing"

	"github.com/revealedpref/garp/matrix"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// T=1 (any G, any positive p1, any non-negative x1): all indices 0,
// data_rationalizable = true, MPI = (0,0,0). Spec.md worked example 1.
func TestSinglePeriodIsTriviallyRational(t *testing.T) {
	P := mustMatrix(t, [][]float64{{1}, {2}})
	Q := mustMatrix(t, [][]float64{{3}, {1}})

	rational, err := DataRationalizable(P, Q)
	require.NoError(t, err)
	require.True(t, rational)

	values, err := RationalityMeasures(context.Background(), P, Q, []float64{1})
	require.NoError(t, err)
	require.Equal(t, 0.0, values.Afriat)
	require.Equal(t, 0.0, values.HM)
	require.Equal(t, 0.0, values.Swaps)

	mpi, err := MoneyPumpIndex(P, Q)
	require.NoError(t, err)
	require.Equal(t, int64(0), mpi.Count)
}

// Classical 2-period violation (spec.md worked example 3): strict 2-cycle
// at common weight 0.2.
func TestClassicalViolationIsNotRationalizable(t *testing.T) {
	P := mustMatrix(t, [][]float64{{1, 2}, {2, 1}})
	Q := mustMatrix(t, [][]float64{{1, 2}, {2, 1}})

	rational, err := DataRationalizable(P, Q)
	require.NoError(t, err)
	require.False(t, rational)

	values, err := RationalityMeasures(context.Background(), P, Q, []float64{1})
	require.NoError(t, err)
	require.InDelta(t, 0.2, values.Afriat, 1e-9)
	require.InDelta(t, 0.5, values.HM, 1e-9)
	require.InDelta(t, 0.5, values.Swaps, 1e-9)
}

// All-zero-weight cycle (spec.md worked example 5): no strict edge, so the
// data is still rationalizable and every index is 0.
func TestAllZeroWeightCycleIsRationalizable(t *testing.T) {
	P := mustMatrix(t, [][]float64{{1, 1}, {1, 1}})
	Q := mustMatrix(t, [][]float64{{1, 1}, {1, 1}})

	rational, err := DataRationalizable(P, Q)
	require.NoError(t, err)
	require.True(t, rational)

	values, err := RationalityMeasures(context.Background(), P, Q, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, values.Afriat)
	require.Equal(t, 0.0, values.HM)
	require.Equal(t, 0.0, values.Swaps)
}

// Symmetric-utility example from spec.md worked example 4: T=1, G=2,
// p1=(1,2), x1=(1,2). Swapping the bundle's labels costs 1, weight 1/5.
func TestSymmetricExtensionFindsSelfComparison(t *testing.T) {
	P := mustMatrix(t, [][]float64{{1}, {2}})
	Q := mustMatrix(t, [][]float64{{1}, {2}})

	values, err := RationalityMeasuresSymmetric(context.Background(), P, Q, []float64{1})
	require.NoError(t, err)
	require.InDelta(t, 0.2, values.Afriat, 1e-9)
}

func TestValuesFlattenLength(t *testing.T) {
	P := mustMatrix(t, [][]float64{{1, 2}, {2, 1}})
	Q := mustMatrix(t, [][]float64{{1, 2}, {2, 1}})

	values, err := RationalityMeasures(context.Background(), P, Q, []float64{0, 1})
	require.NoError(t, err)
	require.Len(t, values.Flatten(), 3+3*2)
}
