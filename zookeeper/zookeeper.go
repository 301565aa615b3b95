// Package zookeeper provides a relay.Source implementation for ZooKeeper
// nodes using the native watch API.
package zookeeper

import (
	"context"

	"github.com/go-zookeeper/zk"
)

// Source fires a reload trigger whenever a ZooKeeper node is created,
// changed, or deleted.
type Source struct {
	conn *zk.Conn
	path string
}

// Option configures a Source.
type Option func(*Source)

// New creates a Source for the given ZooKeeper path.
func New(conn *zk.Conn, path string, opts ...Option) *Source {
	s := &Source{
		conn: conn,
		path: path,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Watch fires the trigger on node events and blocks until the context is
// canceled. ZooKeeper watches are one-shot, so the watch is re-armed after
// every event; ExistsW arms regardless of whether the node exists yet.
func (s *Source) Watch(ctx context.Context, trigger func(), report func(error)) {
	for {
		if ctx.Err() != nil {
			return
		}

		_, _, eventCh, err := s.conn.ExistsW(s.path)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			report(err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case event := <-eventCh:
			if event.Err != nil {
				if ctx.Err() != nil {
					return
				}
				report(event.Err)
				continue
			}
			switch event.Type {
			case zk.EventNodeCreated, zk.EventNodeDataChanged, zk.EventNodeDeleted:
				trigger()
			}
		}
	}
}
