package montecarlo

// Result is the outcome of PercentileScore: one weakly/strictly-less-rational
// probability per component of the flattened index vector (spec.md §6's
// length 3+3·|alphas| layout), plus the fraction of draws whose random
// quantities were themselves GARP-rationalizable. Every probability is
// taken over the draws that actually produced a usable sample: a draw whose
// budget sampling or index computation fails is excluded rather than
// aborting the whole run, and counted in FailedDraws instead.
//
// ComponentSummary is an optional diagnostic, one entry per flattened-index
// component, summarizing its distribution across every successful draw;
// nil if no draw succeeded.
type Result struct {
	ProbWeaklyLessRational   []float64
	ProbStrictlyLessRational []float64
	ProbGarp                 float64
	ComponentSummary         []ComponentSummary
	FailedDraws              int
}
