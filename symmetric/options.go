package symmetric

// defaultMaxGoods is the empirical ceiling below which enumerating every
// permutation of goods stays practical (spec: "empirically G ≤ 7").
const defaultMaxGoods = 7

type config struct {
	maxGoods int
}

// Option configures Augment.
type Option func(*config)

// WithMaxGoods overrides the permutation-enumeration guard.
func WithMaxGoods(n int) Option {
	return func(c *config) { c.maxGoods = n }
}

func newConfig(opts ...Option) *config {
	c := &config{maxGoods: defaultMaxGoods}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
