package relay

import "github.com/zoobzio/capitan"

// Session lifecycle signals.
var (
	// SessionStarted is emitted when a session is constructed and the
	// initial load has succeeded.
	SessionStarted = capitan.NewSignal(
		"relay.session.started",
		"Reload session constructed",
	)

	// SessionClosed is emitted when a session is closed and all attached
	// sources have terminated.
	SessionClosed = capitan.NewSignal(
		"relay.session.closed",
		"Reload session closed",
	)

	// SessionStateChanged is emitted when a session transitions between states.
	SessionStateChanged = capitan.NewSignal(
		"relay.session.state.changed",
		"Session state transition",
	)
)

// Reload processing signals.
var (
	// ReloadTriggered is emitted when a watch source or Pulse fires.
	ReloadTriggered = capitan.NewSignal(
		"relay.reload.triggered",
		"Reload trigger received",
	)

	// ReloadSucceeded is emitted when a reloaded value is published.
	ReloadSucceeded = capitan.NewSignal(
		"relay.reload.succeeded",
		"Configuration reloaded and published",
	)

	// ReloadFailed is emitted when the loader fails on a reload.
	ReloadFailed = capitan.NewSignal(
		"relay.reload.failed",
		"Loader invocation failed",
	)

	// SourceFailed is emitted when a watch source reports an error.
	SourceFailed = capitan.NewSignal(
		"relay.source.failed",
		"Watch source reported an error",
	)

	// SubscriberPanicked is emitted when a subscriber callback panics.
	SubscriberPanicked = capitan.NewSignal(
		"relay.subscriber.panicked",
		"Subscriber callback panicked",
	)
)
