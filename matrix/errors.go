package matrix

import "errors"

// Sentinel errors for the matrix package. Callers should branch on these
// with errors.Is rather than string-matching.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrRaggedRows indicates that NewDenseFromRows was given rows of
	// differing lengths.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrShapeMismatch indicates two matrices expected to share a dimension
	// (e.g. P and Q must share rows=G and cols=T) do not.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonFinite indicates a NaN or Inf value was found where only finite
	// values are permitted.
	ErrNonFinite = errors.New("matrix: non-finite value")
)
