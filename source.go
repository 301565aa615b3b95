package relay

import "context"

// Source observes an external system and fires the trigger callback whenever
// the watched thing may have changed. Sources know nothing about
// configuration values; deciding what changed is the loader's job.
//
// Watch blocks until ctx is canceled. Setup failures and errors encountered
// while watching are delivered through report; Watch never returns an error
// because attachment has no waiting caller. Sources must not fire at attach
// time for the value that already exists: the session holds it from the
// initial load.
type Source interface {
	Watch(ctx context.Context, trigger func(), report func(error))
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, trigger func(), report func(error))

// Watch calls f(ctx, trigger, report).
func (f SourceFunc) Watch(ctx context.Context, trigger func(), report func(error)) {
	f(ctx, trigger, report)
}
