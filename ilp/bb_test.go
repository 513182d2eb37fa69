package ilp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveSingleRowPicksCheapest(t *testing.T) {
	p := &Problem{
		Cost: []float64{3, 1, 2},
		Rows: [][]int32{{0, 1, 2}},
	}
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, sol.Selected)
	require.Equal(t, 1.0, sol.Objective)
}

// Two disjoint rows force two distinct items.
func TestSolveDisjointRowsNeedsBoth(t *testing.T) {
	p := &Problem{
		Cost: []float64{1, 1, 5, 5},
		Rows: [][]int32{{0, 1}, {2, 3}},
	}
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 6.0, sol.Objective)
}

// An item shared by two rows should be reused instead of paying twice.
func TestSolveSharedItemIsReused(t *testing.T) {
	p := &Problem{
		Cost: []float64{10, 1, 1},
		Rows: [][]int32{{0, 1}, {0, 2}},
	}
	sol, err := Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 2.0, sol.Objective)
	require.False(t, sol.Selected[0])
	require.True(t, sol.Selected[1])
	require.True(t, sol.Selected[2])
}

func TestSolveRejectsEmptyRow(t *testing.T) {
	p := &Problem{Cost: []float64{1}, Rows: [][]int32{{}}}
	_, err := Solve(context.Background(), p)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestSolveRejectsEmptyProblem(t *testing.T) {
	_, err := Solve(context.Background(), &Problem{})
	require.ErrorIs(t, err, ErrEmptyProblem)
}

func TestSolveRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &Problem{Cost: []float64{1, 2}, Rows: [][]int32{{0, 1}}}
	_, err := Solve(ctx, p)
	// A trivial problem may finish before the first sparse check fires, but
	// Solve checks the context again once the search returns, so a canceled
	// context always yields ErrCanceled.
	require.ErrorIs(t, err, ErrCanceled)
}
