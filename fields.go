package relay

import "github.com/zoobzio/capitan"

// Field keys for session events.
var (
	// KeyState is the current state of the session.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyLoadTimeout is the configured per-load timeout.
	KeyLoadTimeout = capitan.NewDurationKey("load_timeout")
)
