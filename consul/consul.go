// Package consul provides a relay.Source implementation for Consul KV
// using blocking queries.
package consul

import (
	"context"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/zoobzio/clockz"
)

// DefaultRetryDelay is the default pause before re-issuing a blocking query
// after an error.
const DefaultRetryDelay = time.Second

// Source fires a reload trigger whenever a Consul KV key's modify index
// advances.
type Source struct {
	client *api.Client
	key    string
	retry  time.Duration
	clock  clockz.Clock
}

// Option configures a Source.
type Option func(*Source)

// WithRetryDelay sets the pause before re-issuing a blocking query after an
// error, so a failing agent is not hammered. Defaults to 1s.
func WithRetryDelay(d time.Duration) Option {
	return func(s *Source) {
		s.retry = d
	}
}

// WithClock sets a custom clock for the retry delay.
// Use this with clockz.FakeClock for deterministic testing.
func WithClock(clock clockz.Clock) Option {
	return func(s *Source) {
		s.clock = clock
	}
}

// New creates a Source for the given Consul KV key.
func New(client *api.Client, key string, opts ...Option) *Source {
	s := &Source{
		client: client,
		key:    key,
		retry:  DefaultRetryDelay,
		clock:  clockz.RealClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger whenever the key's index changes, and blocks until
// the context is canceled. The index present at attach time establishes the
// baseline without firing. Query errors are reported, then the query is
// retried after the configured delay.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	kv := s.client.KV()

	// Establish the starting index without firing.
	_, meta, err := kv.Get(s.key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		report(err)
		return
	}
	lastIndex := meta.LastIndex

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		opts := &api.QueryOptions{
			WaitIndex: lastIndex,
		}
		_, meta, err := kv.Get(s.key, opts.WithContext(ctx))
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			report(err)
			if !s.pause(ctx) {
				return
			}
			continue
		}

		if meta.LastIndex != lastIndex {
			lastIndex = meta.LastIndex
			trigger()
		}
	}
}

// pause waits for the retry delay, returning false if the context ended first.
func (s *Source) pause(ctx context.Context) bool {
	timer := s.clock.NewTimer(s.retry)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C():
		return true
	}
}
