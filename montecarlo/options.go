package montecarlo

type config struct {
	seed    int64
	workers int
}

// Option configures PercentileScore.
type Option func(*config)

// WithSeed fixes the base RNG seed; every draw derives its own stream from
// it, so two calls with the same seed produce identical draws. Zero (the
// default) uses a fixed built-in seed, not a time-based one.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWorkers bounds how many draws are scored concurrently. Zero (the
// default) bounds it at runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
