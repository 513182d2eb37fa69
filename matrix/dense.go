// Package matrix provides the dense, row-major float64 storage used for the
// price and quantity observation matrices (P, Q) throughout this module.
//
// It is a deliberately small cousin of a general-purpose dense matrix type:
// only construction, element access, row/column views, cloning, and the
// dot-products the revealed-preference computations need. Anything beyond
// that (factorizations, APSP, graph conversions) belongs to a different
// problem and is not implemented here.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dense is a rows×cols matrix backed by a single flat slice in row-major
// order: element (i,j) lives at data[i*cols+j]. This mirrors the layout
// conventions of dense numeric libraries so that row slices are contiguous.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zero-initialized rows×cols matrix.
// Returns ErrInvalidDimensions if rows<=0 or cols<=0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: %w: rows=%d cols=%d", ErrInvalidDimensions, rows, cols)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from row-major literal data, validating
// that every row has the same length. This is the common construction path
// for callers assembling P or Q from observed data.
func NewDenseFromRows(rowsData [][]float64) (*Dense, error) {
	if len(rowsData) == 0 {
		return nil, fmt.Errorf("matrix: %w: no rows", ErrInvalidDimensions)
	}
	cols := len(rowsData[0])
	if cols == 0 {
		return nil, fmt.Errorf("matrix: %w: zero columns", ErrInvalidDimensions)
	}
	d, err := NewDense(len(rowsData), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rowsData {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: %w: row %d has %d columns, want %d", ErrRaggedRows, i, len(row), cols)
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i,j). Panics on out-of-range indices, matching
// Go slice-indexing conventions rather than returning an error on a hot path.
func (d *Dense) At(i, j int) float64 {
	d.checkBounds(i, j)

	return d.data[i*d.cols+j]
}

// Set assigns v at (i,j). Panics on out-of-range indices.
func (d *Dense) Set(i, j int, v float64) {
	d.checkBounds(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense) checkBounds(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of bounds for %dx%d", i, j, d.rows, d.cols))
	}
}

// Row returns a read-only view of row i. Since storage is row-major this is
// a contiguous slice and is never copied; callers must not mutate it.
func (d *Dense) Row(i int) []float64 {
	if i < 0 || i >= d.rows {
		panic(fmt.Sprintf("matrix: row %d out of bounds for %d rows", i, d.rows))
	}

	return d.data[i*d.cols : (i+1)*d.cols]
}

// Col returns a freshly allocated copy of column j (columns are not
// contiguous in row-major storage, unlike Row).
func (d *Dense) Col(j int) []float64 {
	if j < 0 || j >= d.cols {
		panic(fmt.Sprintf("matrix: col %d out of bounds for %d cols", j, d.cols))
	}
	col := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		col[i] = d.data[i*d.cols+j]
	}

	return col
}

// Clone returns a deep, independent copy of d.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// ColDot returns the dot product of column a of d and column b of other.
// d and other must have the same row count. Used throughout graphbuild to
// compute P_v·Q_v and P_v·Q_u without materializing intermediate slices more
// than once per pair.
func ColDot(d *Dense, a int, other *Dense, b int) float64 {
	ca := d.Col(a)
	cb := other.Col(b)

	return floats.Dot(ca, cb)
}
