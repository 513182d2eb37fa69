package montecarlo

import (
	"context"
	"math"
	"runtime"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/indices"
	"github.com/revealedpref/garp/matrix"
	"github.com/revealedpref/garp/scc"
	"golang.org/x/sync/errgroup"
)

type drawOutcome struct {
	values         []float64
	rationalizable bool
	ok             bool
}

// PercentileScore draws n independent random quantity panels and compares
// the observed data's rationality measures against their distribution
// (spec §4.7). alphas is forwarded to indices.Measures for both the
// observed data and every draw.
func PercentileScore(ctx context.Context, P, Q *matrix.Dense, alphas []float64, n int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	g, err := graphbuild.Build(P, Q)
	if err != nil {
		return nil, err
	}
	observed, err := indices.Measures(ctx, g, alphas)
	if err != nil {
		return nil, err
	}
	obs := roundOrdinals(observed.Flatten(), g.T)

	// Resolve the configured seed (0 ⇒ defaultSeed) and consume one Int63
	// from it up front, single-threaded, to decorrelate the per-draw streams
	// from the raw seed bit pattern before any goroutine starts.
	baseSeed := rngFromSeed(cfg.seed).Int63()

	outcomes := make([]drawOutcome, n)
	eg, gctx := errgroup.WithContext(ctx)
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(workers)

	// Each draw's failure is its own outcome, not a group-wide abort: a
	// single degenerate budget draw must not discard every other draw's
	// work, and the fraction of draws that failed is itself a value the
	// caller needs (Result.FailedDraws).
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rng := deriveRNG(baseSeed, uint64(i))
			Qtilde, err := sampleBudget(P, g.Income, rng)
			if err != nil {
				return nil
			}
			gi, err := graphbuild.Build(P, Qtilde)
			if err != nil {
				return nil
			}
			values, err := indices.Measures(gctx, gi, alphas)
			if err != nil {
				return nil
			}
			outcomes[i] = drawOutcome{
				values:         roundOrdinals(values.Flatten(), gi.T),
				rationalizable: !scc.HasStrictCycle(gi, graphbuild.NewEdgeMask(gi.EdgeCount())),
				ok:             true,
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err // only ctx cancellation reaches here; per-draw failures don't
	}

	k := len(obs)
	weak := make([]float64, k)
	strict := make([]float64, k)
	var garpCount, failed int
	var perDraw [][]float64
	for _, o := range outcomes {
		if !o.ok {
			failed++

			continue
		}
		for j := 0; j < k; j++ {
			if o.values[j] >= obs[j] {
				weak[j]++
			}
			if o.values[j] > obs[j] {
				strict[j]++
			}
		}
		if o.rationalizable {
			garpCount++
		}
		perDraw = append(perDraw, o.values)
	}

	succeeded := n - failed
	if succeeded > 0 {
		for j := 0; j < k; j++ {
			weak[j] /= float64(succeeded)
			strict[j] /= float64(succeeded)
		}
	}

	summary, err := summarize(perDraw, k)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProbWeaklyLessRational:   weak,
		ProbStrictlyLessRational: strict,
		ComponentSummary:         summary,
		FailedDraws:              failed,
	}
	if succeeded > 0 {
		result.ProbGarp = float64(garpCount) / float64(succeeded)
	}

	return result, nil
}

// roundOrdinals rounds the HM and Swaps components (positions 1 and 2 of
// the flattened vector, spec §6) to the nearest T-th, since they are only
// meaningful as optimum/T for an integer optimum.
func roundOrdinals(v []float64, T int) []float64 {
	out := append([]float64(nil), v...)
	if len(out) > 1 {
		out[1] = math.Round(out[1]*float64(T)) / float64(T)
	}
	if len(out) > 2 {
		out[2] = math.Round(out[2]*float64(T)) / float64(T)
	}

	return out
}
