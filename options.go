package relay

import (
	"time"

	"github.com/zoobzio/clockz"
)

// config holds construction options for a session.
type config struct {
	clock       clockz.Clock
	loadTimeout time.Duration
	historySize int
	metrics     MetricsProvider
}

// Option configures a session at construction.
type Option func(*config)

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic interval and timeout
// testing. Sources built by Every inherit the session clock.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLoadTimeout bounds each loader invocation, including the initial load.
// A load that exceeds the timeout fails with context.DeadlineExceeded.
// Default: no timeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *config) {
		c.loadTimeout = d
	}
}

// WithErrorHistory retains up to n recent failures, readable via Errors().
// The history is cleared on every successful reload.
// Use 0 (default) to retain only the most recent error via LastError().
func WithErrorHistory(n int) Option {
	return func(c *config) {
		c.historySize = n
	}
}

// WithMetrics sets a metrics provider for observability integration.
// The provider receives callbacks on triggers, reload success/failure,
// source errors, and state changes.
func WithMetrics(provider MetricsProvider) Option {
	return func(c *config) {
		c.metrics = provider
	}
}
