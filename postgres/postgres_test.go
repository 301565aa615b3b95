package postgres

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestNew_Defaults(t *testing.T) {
	src := New(nil, "config_changed")
	if src.channel != "config_changed" {
		t.Errorf("expected channel 'config_changed', got %q", src.channel)
	}
	if src.payload != "" {
		t.Errorf("expected no payload filter, got %q", src.payload)
	}
}

func TestNew_WithPayload(t *testing.T) {
	src := New(nil, "config_changed", WithPayload("app"))
	if src.payload != "app" {
		t.Errorf("expected payload 'app', got %q", src.payload)
	}
}

// setupPool connects to the database named by DATABASE_URL, skipping the
// test when unset.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestSource_TriggersOnNotify(t *testing.T) {
	pool := setupPool(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src := New(pool, "relay_test_notify")

	var triggers atomic.Int64
	go src.Watch(ctx, func() { triggers.Add(1) }, func(err error) { t.Logf("source error: %v", err) })

	// Let the LISTEN register before notifying
	time.Sleep(500 * time.Millisecond)

	if _, err := pool.Exec(ctx, "SELECT pg_notify('relay_test_notify', 'app')"); err != nil {
		t.Fatalf("failed to notify: %v", err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for triggers.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if triggers.Load() == 0 {
		t.Fatal("timeout waiting for trigger after NOTIFY")
	}
}

func TestSource_PayloadFilter(t *testing.T) {
	pool := setupPool(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src := New(pool, "relay_test_filter", WithPayload("wanted"))

	var triggers atomic.Int64
	go src.Watch(ctx, func() { triggers.Add(1) }, func(err error) { t.Logf("source error: %v", err) })

	time.Sleep(500 * time.Millisecond)

	if _, err := pool.Exec(ctx, "SELECT pg_notify('relay_test_filter', 'other')"); err != nil {
		t.Fatalf("failed to notify: %v", err)
	}

	time.Sleep(time.Second)
	if n := triggers.Load(); n != 0 {
		t.Errorf("expected non-matching payload to be ignored, got %d triggers", n)
	}

	if _, err := pool.Exec(ctx, "SELECT pg_notify('relay_test_filter', 'wanted')"); err != nil {
		t.Fatalf("failed to notify: %v", err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for triggers.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if triggers.Load() == 0 {
		t.Fatal("timeout waiting for trigger with matching payload")
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	pool := setupPool(t)
	ctx, cancel := context.WithCancel(context.Background())

	src := New(pool, "relay_test_cancel")

	done := make(chan struct{})
	go func() {
		defer close(done)
		src.Watch(ctx, func() {}, func(error) {})
	}()

	time.Sleep(500 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
