package nfa

import (
	"io"
	"log/slog"
)

type options struct {
	logger   *slog.Logger
	strategy Strategy
}

// Option configures refinement and minimization.
type Option func(*options)

// WithLogger Send debug records about refinement rounds to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrategy Select how a partition block is split in each refinement round.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		strategy: StrategySignature,
	}
	for _, fn := range opts {
		fn(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return o
}
