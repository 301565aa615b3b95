package relay

import "context"

// ChannelSource fires the trigger for every value received on a
// caller-supplied channel. Useful for testing and for plumbing triggers from
// systems that already have a change feed.
type ChannelSource struct {
	ch <-chan struct{}
}

// NewChannelSource creates a ChannelSource wrapping the given channel.
func NewChannelSource(ch <-chan struct{}) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Watch fires the trigger once per receive. Closing the channel ends the
// watch.
func (s *ChannelSource) Watch(ctx context.Context, trigger func(), _ func(error)) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-s.ch:
			if !ok {
				return
			}
			trigger()
		}
	}
}
