package ilp

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// bbEngine holds all search state for one Solve call, mirroring the
// dedicated-struct-over-closures branch-and-bound style: explicit
// dependencies, predictable hot-path state, deterministic branching.
type bbEngine struct {
	n    int
	cost []float64
	rows [][]int32

	rowSatisfied []bool
	itemRows     [][]int32 // itemRows[j] = rows containing item j, precomputed once

	selected []bool

	bestSelected []bool
	bestCost     float64

	useDeadline bool
	deadline    time.Time
	steps       int

	ctx    context.Context
	logger *zap.Logger
}

// Solve finds the exact minimum-cost x ∈ {0,1}^N covering every row of
// p.Rows (each row: at least one of its listed items must be chosen).
func Solve(ctx context.Context, p *Problem, opts ...Option) (*Solution, error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	e := &bbEngine{
		n:            len(p.Cost),
		cost:         p.Cost,
		rows:         p.Rows,
		rowSatisfied: make([]bool, len(p.Rows)),
		selected:     make([]bool, len(p.Cost)),
		bestSelected: make([]bool, len(p.Cost)),
		ctx:          ctx,
		logger:       cfg.logger,
	}
	if cfg.deadline > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.deadline)
	}
	e.itemRows = make([][]int32, e.n)
	for i, row := range e.rows {
		for _, j := range row {
			e.itemRows[j] = append(e.itemRows[j], int32(i))
		}
	}

	// Seed UB: select every item, trivially feasible.
	e.bestCost = 0
	for j, c := range e.cost {
		e.bestSelected[j] = true
		e.bestCost += c
	}

	e.dfs(0)

	if e.ctx != nil && e.ctx.Err() != nil {
		e.logger.Warn("ilp: canceled", zap.Int("nodes", e.steps))

		return nil, ErrCanceled
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.logger.Warn("ilp: deadline exceeded", zap.Int("nodes", e.steps))

		return nil, ErrDeadlineExceeded
	}

	e.logger.Debug("ilp: solved", zap.Int("nodes", e.steps), zap.Float64("objective", e.bestCost))

	return &Solution{Selected: append([]bool(nil), e.bestSelected...), Objective: e.bestCost}, nil
}

func validateProblem(p *Problem) error {
	if p == nil || len(p.Cost) == 0 {
		return ErrEmptyProblem
	}
	for _, row := range p.Rows {
		if len(row) == 0 {
			return ErrInfeasible
		}
	}

	return nil
}

// shouldStop performs a sparse deadline/cancellation check (every 4096 node
// events), matching the soft-time-budget pattern used throughout the
// teacher's exact search code.
func (e *bbEngine) shouldStop() bool {
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		return true
	}

	return e.useDeadline && time.Now().After(e.deadline)
}

// pickMostConstrainedRow returns the index of the shortest unsatisfied row,
// or -1 if every row is already satisfied.
func (e *bbEngine) pickMostConstrainedRow() int {
	best := -1
	for i, sat := range e.rowSatisfied {
		if sat {
			continue
		}
		if best == -1 || len(e.rows[i]) < len(e.rows[best]) {
			best = i
		}
	}

	return best
}

func (e *bbEngine) lowerBound(costSoFar float64, row int) float64 {
	if row == -1 {
		return costSoFar
	}
	min := e.cost[e.rows[row][0]]
	for _, j := range e.rows[row][1:] {
		if e.cost[j] < min {
			min = e.cost[j]
		}
	}

	return costSoFar + min
}

// orderedItems returns row's items sorted by ascending cost then index, for
// deterministic branching (tightens the incumbent early).
func orderedItems(cost []float64, row []int32) []int32 {
	out := append([]int32(nil), row...)
	sort.SliceStable(out, func(a, b int) bool {
		if cost[out[a]] != cost[out[b]] {
			return cost[out[a]] < cost[out[b]]
		}

		return out[a] < out[b]
	})

	return out
}

func (e *bbEngine) dfs(costSoFar float64) {
	if e.shouldStop() {
		return
	}

	row := e.pickMostConstrainedRow()
	if row == -1 {
		if costSoFar < e.bestCost {
			e.bestCost = costSoFar
			copy(e.bestSelected, e.selected)
		}

		return
	}

	if lb := e.lowerBound(costSoFar, row); lb >= e.bestCost {
		return
	}

	for _, j := range orderedItems(e.cost, e.rows[row]) {
		if e.selected[j] {
			continue
		}
		e.selected[j] = true
		newlySatisfied := e.markRowsFor(j)
		e.dfs(costSoFar + e.cost[j])
		e.unmarkRows(newlySatisfied)
		e.selected[j] = false
	}
}

// markRowsFor marks every currently-unsatisfied row containing item j as
// satisfied, and returns the rows it actually flipped (for backtracking).
func (e *bbEngine) markRowsFor(j int32) []int32 {
	var flipped []int32
	for _, i := range e.itemRows[j] {
		if !e.rowSatisfied[i] {
			e.rowSatisfied[i] = true
			flipped = append(flipped, i)
		}
	}

	return flipped
}

func (e *bbEngine) unmarkRows(rows []int32) {
	for _, i := range rows {
		e.rowSatisfied[i] = false
	}
}
