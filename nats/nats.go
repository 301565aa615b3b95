// Package nats provides a relay.Source implementation for NATS JetStream KV
// using the native Watch API.
package nats

import (
	"context"

	"github.com/nats-io/nats.go/jetstream"
)

// Source fires a reload trigger whenever a NATS KV key changes.
type Source struct {
	kv      jetstream.KeyValue
	key     string
	deletes bool
}

// Option configures a Source.
type Option func(*Source)

// WithDeletes also fires the trigger when the key is deleted or purged.
// By default only puts fire; what a missing key means is the loader's call.
func WithDeletes() Option {
	return func(s *Source) {
		s.deletes = true
	}
}

// New creates a Source for the given NATS KV key.
func New(kv jetstream.KeyValue, key string, opts ...Option) *Source {
	s := &Source{
		kv:  kv,
		key: key,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger whenever the key is put, and blocks until the
// context is canceled. The KV watcher replays the current value first; the
// replay does not fire because the session already holds the initial value.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	watcher, err := s.kv.Watch(ctx, s.key)
	if err != nil {
		report(err)
		return
	}
	defer watcher.Stop()

	// nil entry marks the end of the initial replay
	replaying := true
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-watcher.Updates():
			if !ok {
				return
			}
			if entry == nil {
				replaying = false
				continue
			}
			if replaying {
				continue
			}
			if !s.deletes &&
				(entry.Operation() == jetstream.KeyValueDelete || entry.Operation() == jetstream.KeyValuePurge) {
				continue
			}
			trigger()
		}
	}
}
