package graphbuild

import "errors"

// Sentinel errors for graphbuild. All are classified invalid_input per the
// module's error taxonomy; callers should branch with errors.Is.
var (
	// ErrInvalidShape indicates P and Q do not share the same G×T shape, or
	// G<1 or T<1.
	ErrInvalidShape = errors.New("graphbuild: invalid shape")

	// ErrNonPositivePrice indicates some entry of P is <= 0.
	ErrNonPositivePrice = errors.New("graphbuild: non-positive price")

	// ErrNegativeQuantity indicates some entry of Q is < 0.
	ErrNegativeQuantity = errors.New("graphbuild: negative quantity")

	// ErrZeroIncome indicates some period t has P_t·Q_t <= 0.
	ErrZeroIncome = errors.New("graphbuild: zero or negative income")

	// ErrNonFinite indicates a NaN or Inf entry in P or Q.
	ErrNonFinite = errors.New("graphbuild: non-finite value")
)
