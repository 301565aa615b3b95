// Package postgres provides a relay.Source implementation for PostgreSQL
// using LISTEN/NOTIFY.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Source fires a reload trigger whenever a notification arrives on a
// PostgreSQL channel. Requires a trigger on the configuration table that
// sends notifications.
//
// Example trigger setup:
//
//	CREATE OR REPLACE FUNCTION notify_config_change() RETURNS trigger AS $$
//	BEGIN
//	    PERFORM pg_notify('config_changed', NEW.key);
//	    RETURN NEW;
//	END;
//	$$ LANGUAGE plpgsql;
//
//	CREATE TRIGGER config_change_trigger
//	    AFTER INSERT OR UPDATE ON config
//	    FOR EACH ROW EXECUTE FUNCTION notify_config_change();
type Source struct {
	pool    *pgxpool.Pool
	channel string
	payload string
}

// Option configures a Source.
type Option func(*Source)

// WithPayload restricts triggers to notifications carrying the given
// payload, such as a row key. By default every notification on the channel
// fires.
func WithPayload(payload string) Option {
	return func(s *Source) {
		s.payload = payload
	}
}

// New creates a Source for the given notification channel.
// The channel should match the channel used in pg_notify.
func New(pool *pgxpool.Pool, channel string, opts ...Option) *Source {
	s := &Source{
		pool:    pool,
		channel: channel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger once per matching notification and blocks until
// the context is canceled. The watch holds one pooled connection for its
// whole lifetime. Connection errors are reported and end the watch, since
// the LISTEN registration dies with the connection.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		report(fmt.Errorf("failed to acquire connection: %w", err))
		return
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, fmt.Sprintf("LISTEN %s", s.channel)); err != nil {
		if ctx.Err() != nil {
			return
		}
		report(fmt.Errorf("failed to listen on channel %s: %w", s.channel, err))
		return
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			report(err)
			return
		}

		if s.payload != "" && notification.Payload != s.payload {
			continue
		}
		trigger()
	}
}
