package relay

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func TestNewSignalSource_DefaultsToSIGHUP(t *testing.T) {
	src := NewSignalSource()
	if len(src.signals) != 1 || src.signals[0] != syscall.SIGHUP {
		t.Errorf("expected default signal SIGHUP, got %v", src.signals)
	}
}

func TestSignalSource_TriggersOnSignal(t *testing.T) {
	src := NewSignalSource(syscall.SIGUSR1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var triggers atomic.Int64
	go src.Watch(ctx, func() { triggers.Add(1) }, func(error) {})

	// Let the watcher register its signal handler
	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("failed to send signal: %v", err)
	}

	if !waitFor(t, 2*time.Second, func() bool { return triggers.Load() >= 1 }) {
		t.Fatalf("expected a trigger after SIGUSR1, got %d", triggers.Load())
	}
}

func TestSignalSource_StopsOnCancel(t *testing.T) {
	src := NewSignalSource(syscall.SIGUSR2)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		src.Watch(ctx, func() {}, func(error) {})
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
