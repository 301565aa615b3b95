package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
)

// IntervalSource fires the trigger at a fixed period. The first trigger
// fires one full period after the watch starts, never at attach time.
type IntervalSource struct {
	period time.Duration
	clock  clockz.Clock
}

// NewIntervalSource creates an IntervalSource with the given period.
func NewIntervalSource(period time.Duration) *IntervalSource {
	return &IntervalSource{
		period: period,
		clock:  clockz.RealClock,
	}
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic testing.
func (s *IntervalSource) Clock(clock clockz.Clock) *IntervalSource {
	s.clock = clock
	return s
}

// Watch fires the trigger once per elapsed period until the context is
// canceled. A non-positive period is reported as an error and the watch
// ends immediately.
func (s *IntervalSource) Watch(ctx context.Context, trigger func(), report func(error)) {
	if s.period <= 0 {
		report(fmt.Errorf("interval period must be positive, got %v", s.period))
		return
	}

	timer := s.clock.NewTimer(s.period)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C():
			trigger()
			timer.Reset(s.period)
		}
	}
}
