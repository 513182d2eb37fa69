package ilp

// Problem is a sparse binary covering instance: N candidate items with
// per-item cost, and M rows, each naming the subset of items of which at
// least one must be selected.
type Problem struct {
	Cost []float64
	Rows [][]int32
}

// Solution is the result of an exact Solve: Selected[j] is true iff item j
// is chosen for removal, and Objective is c·x at the optimum.
type Solution struct {
	Selected  []bool
	Objective float64
}
