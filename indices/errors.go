package indices

import "errors"

// ErrNonconvergence is returned when the cycle-cover outer loop exceeds its
// 5·T iteration safety cap without exhausting every cycle. Each iteration
// either adds at least one new constraint row or terminates, so this
// signals a bug in the removal-granularity bookkeeping rather than a
// genuinely hard instance.
var ErrNonconvergence = errors.New("indices: cycle-cover loop failed to converge")
