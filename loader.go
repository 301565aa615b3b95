package relay

import "context"

// Loader produces a configuration value on demand. The session calls Load
// once at construction and once per trigger; it never inspects or transforms
// the result. Parsing, merging, and validation are the loader's business.
//
// Load must be safe for concurrent use: triggers from different sources can
// overlap. Implementations should honor ctx cancellation so that closing the
// session does not strand an in-flight load.
type Loader[T any] interface {
	Load(ctx context.Context) (T, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[T any] func(ctx context.Context) (T, error)

// Load calls f(ctx).
func (f LoaderFunc[T]) Load(ctx context.Context) (T, error) {
	return f(ctx)
}
