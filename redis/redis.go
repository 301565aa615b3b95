// Package redis provides a relay.Source implementation for Redis keys
// using keyspace notifications.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Source fires a reload trigger whenever a Redis key is written.
// Requires Redis to have keyspace notifications enabled:
//
//	CONFIG SET notify-keyspace-events KEA
//
// Or in redis.conf:
//
//	notify-keyspace-events KEA
type Source struct {
	client *redis.Client
	key    string
	db     int
}

// Option configures a Source.
type Option func(*Source)

// WithDB sets the database index used in the keyspace notification channel
// name. Defaults to 0.
func WithDB(db int) Option {
	return func(s *Source) {
		s.db = db
	}
}

// New creates a Source for the given Redis key.
func New(client *redis.Client, key string, opts ...Option) *Source {
	s := &Source{
		client: client,
		key:    key,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger on write, delete, and expiry notifications for the
// key, and blocks until the context is canceled. Subscription failures are
// reported and end the watch.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	channel := fmt.Sprintf("__keyspace@%d__:%s", s.db, s.key)
	pubsub := s.client.Subscribe(ctx, channel)
	defer pubsub.Close()

	// Verify subscription worked
	if _, err := pubsub.Receive(ctx); err != nil {
		report(fmt.Errorf("failed to subscribe to keyspace notifications: %w", err))
		return
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			switch msg.Payload {
			case "set", "hset", "mset", "setex", "psetex", "setnx", "del", "expired":
				trigger()
			}
		}
	}
}
