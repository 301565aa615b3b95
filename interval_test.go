package relay

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestIntervalSource_FiresPerPeriod(t *testing.T) {
	clock := clockz.NewFakeClock()
	src := NewIntervalSource(time.Second).Clock(clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var triggers atomic.Int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		src.Watch(ctx, func() { triggers.Add(1) }, func(error) {})
	}()

	// Allow the watch goroutine to arm its timer
	time.Sleep(10 * time.Millisecond)

	if n := triggers.Load(); n != 0 {
		t.Errorf("expected no triggers before the period elapses, got %d", n)
	}

	clock.Advance(time.Second)
	clock.BlockUntilReady()

	if !waitFor(t, time.Second, func() bool { return triggers.Load() == 1 }) {
		t.Fatalf("expected 1 trigger after one period, got %d", triggers.Load())
	}

	// Let the loop re-arm before advancing again
	time.Sleep(10 * time.Millisecond)
	clock.Advance(time.Second)
	clock.BlockUntilReady()

	if !waitFor(t, time.Second, func() bool { return triggers.Load() == 2 }) {
		t.Fatalf("expected 2 triggers after two periods, got %d", triggers.Load())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestIntervalSource_NonPositivePeriod(t *testing.T) {
	src := NewIntervalSource(0)

	var reported atomic.Int64
	done := make(chan struct{})
	go func() {
		defer close(done)
		src.Watch(context.Background(), func() {
			t.Error("unexpected trigger for non-positive period")
		}, func(error) {
			reported.Add(1)
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not return for a non-positive period")
	}
	if n := reported.Load(); n != 1 {
		t.Errorf("expected 1 reported error, got %d", n)
	}
}

func TestIntervalSource_NoTriggerBeforeFirstPeriod(t *testing.T) {
	clock := clockz.NewFakeClock()
	src := NewIntervalSource(time.Minute).Clock(clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var triggers atomic.Int64
	go src.Watch(ctx, func() { triggers.Add(1) }, func(error) {})

	time.Sleep(50 * time.Millisecond)

	if n := triggers.Load(); n != 0 {
		t.Errorf("expected no trigger at attach time, got %d", n)
	}
}
