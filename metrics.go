package relay

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key session events.
type MetricsProvider interface {
	// OnStateChange is called when the session transitions between states.
	OnStateChange(from, to State)

	// OnTrigger is called when a watch source or Pulse fires.
	OnTrigger()

	// OnReloadSuccess is called when a reloaded value is published.
	// Duration is the time taken to load and publish.
	OnReloadSuccess(duration time.Duration)

	// OnReloadFailure is called when the loader fails on a reload.
	OnReloadFailure(duration time.Duration)

	// OnSourceError is called when a watch source reports an error.
	OnSourceError()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)        {}
func (NoOpMetricsProvider) OnTrigger()                      {}
func (NoOpMetricsProvider) OnReloadSuccess(_ time.Duration) {}
func (NoOpMetricsProvider) OnReloadFailure(_ time.Duration) {}
func (NoOpMetricsProvider) OnSourceError()                  {}
