package loaders

import (
	"context"

	"github.com/zoobzio/relay"
)

// Static returns a Loader that always yields the same value.
// Useful in tests and as a bootstrap placeholder.
func Static[T any](value T) relay.LoaderFunc[T] {
	return func(_ context.Context) (T, error) {
		return value, nil
	}
}
