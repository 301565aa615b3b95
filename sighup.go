package relay

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalSource fires the trigger when the process receives an OS signal.
// SIGHUP is the conventional ask-the-daemon-to-reload signal.
type SignalSource struct {
	signals []os.Signal
}

// NewSignalSource creates a SignalSource for the given signals.
// With no arguments it listens for SIGHUP.
func NewSignalSource(signals ...os.Signal) *SignalSource {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGHUP}
	}
	return &SignalSource{signals: signals}
}

// Watch fires the trigger once per received signal until the context is
// canceled. Signal delivery is unregistered on return.
func (s *SignalSource) Watch(ctx context.Context, trigger func(), _ func(error)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, s.signals...)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			trigger()
		}
	}
}
