package osr

import (
	"go.uber.org/zap"

	"github.com/rhythmkit/osr/internal/stats"
)

// Option configures a Codec.
type Option interface {
	apply(*options)
}

// options holds the codec configuration.
type options struct {
	strict bool
	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStrictFrames makes malformed frame tokens fatal instead of skipped.
// The format's native policy is best-effort: a frame token that fails
// numeric parsing is silently dropped. Strict mode rejects the whole decode
// instead, which is useful when the input is supposed to be machine-written.
func WithStrictFrames(strict bool) Option {
	return optionFunc(func(o *options) {
		o.strict = strict
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
