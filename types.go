package garp

import "github.com/revealedpref/garp/indices"

// Values and AlphaTriple are aliased from package indices so callers of
// this package's entry points never need to import indices directly.
type (
	Values      = indices.Values
	AlphaTriple = indices.AlphaTriple
)
