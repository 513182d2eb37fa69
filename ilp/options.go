package ilp

import (
	"time"

	"go.uber.org/zap"
)

type config struct {
	deadline time.Duration
	logger   *zap.Logger
}

// Option configures Solve.
type Option func(*config)

// WithDeadline bounds the search by a soft wall-clock budget, checked every
// 4096 node events (negligible overhead, per the teacher's bbEngine
// pattern). Zero (the default) means unbounded.
func WithDeadline(d time.Duration) Option {
	return func(c *config) { c.deadline = d }
}

// WithLogger injects a structured logger for branch-and-bound diagnostics
// (node counts, deadline hits). A nil logger is replaced by a no-op one.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
