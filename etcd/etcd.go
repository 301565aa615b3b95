// Package etcd provides a relay.Source implementation for etcd keys
// using the native Watch API.
package etcd

import (
	"context"

	clientv3 "go.etcd.io/etcd/client/v3"
)

// Source fires a reload trigger whenever an etcd key changes.
type Source struct {
	client *clientv3.Client
	key    string
	prefix bool
}

// Option configures a Source.
type Option func(*Source)

// WithPrefix watches every key under the configured key, treating it as a
// prefix. Any change underneath fires the trigger.
func WithPrefix() Option {
	return func(s *Source) {
		s.prefix = true
	}
}

// New creates a Source for the given etcd key.
func New(client *clientv3.Client, key string, opts ...Option) *Source {
	s := &Source{
		client: client,
		key:    key,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger whenever the key is put or deleted, and blocks
// until the context is canceled. The value present at attach time does not
// fire; the session already holds it. Watch errors are reported and
// watching continues on the resilient etcd watch channel.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	var opts []clientv3.OpOption
	if s.prefix {
		opts = append(opts, clientv3.WithPrefix())
	}
	watchChan := s.client.Watch(ctx, s.key, opts...)

	for {
		select {
		case <-ctx.Done():
			return
		case resp, ok := <-watchChan:
			if !ok {
				return
			}
			if err := resp.Err(); err != nil {
				report(err)
				continue
			}
			if len(resp.Events) > 0 {
				trigger()
			}
		}
	}
}
