package matrix

import (
	"fmt"
	"math"
)

// ValidateSameShape returns ErrShapeMismatch if a and b differ in rows or
// columns.
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("matrix: %w: %dx%d vs %dx%d", ErrShapeMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// ValidateFinite returns ErrNonFinite if any element of d is NaN or ±Inf.
func ValidateFinite(d *Dense) error {
	for i := 0; i < d.Rows(); i++ {
		for _, v := range d.Row(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("matrix: %w at row %d", ErrNonFinite, i)
			}
		}
	}

	return nil
}

// ValidatePositive returns an error built from base if any element of d is
// not strictly positive.
func ValidatePositive(d *Dense, base error) error {
	for i := 0; i < d.Rows(); i++ {
		for j, v := range d.Row(i) {
			if v <= 0 {
				return fmt.Errorf("matrix: %w at (%d,%d)=%g", base, i, j, v)
			}
		}
	}

	return nil
}

// ValidateNonNegative returns an error built from base if any element of d
// is negative.
func ValidateNonNegative(d *Dense, base error) error {
	for i := 0; i < d.Rows(); i++ {
		for j, v := range d.Row(i) {
			if v < 0 {
				return fmt.Errorf("matrix: %w at (%d,%d)=%g", base, i, j, v)
			}
		}
	}

	return nil
}
