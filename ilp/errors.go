package ilp

import "errors"

var (
	// ErrEmptyProblem is returned when a Problem has zero candidate items.
	ErrEmptyProblem = errors.New("ilp: empty problem")
	// ErrInfeasible is returned when some constraint row has no candidate
	// items at all, so it can never be satisfied.
	ErrInfeasible = errors.New("ilp: infeasible constraint row")
	// ErrDeadlineExceeded is returned when the soft time budget elapses
	// before a provably optimal solution is found.
	ErrDeadlineExceeded = errors.New("ilp: deadline exceeded")
	// ErrCanceled is returned when the supplied context is canceled.
	ErrCanceled = errors.New("ilp: canceled")
)
