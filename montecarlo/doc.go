// Package montecarlo implements the percentile/Monte-Carlo driver (spec
// §4.7): it draws N independent random quantity panels, each period's
// column uniform on its observed budget simplex, scores every draw with
// package indices, and tallies how the observed data's rationality
// measures compare against the random distribution.
//
// Draws are prepared up front from independent RNG streams (one per draw,
// derived from a single seed in the manner of the teacher's tsp.deriveRNG)
// so the scoring loop can run across a worker pool via golang.org/x/sync/errgroup
// without any shared mutable RNG state.
package montecarlo
