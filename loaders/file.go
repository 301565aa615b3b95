// Package loaders adapts common configuration sources to the relay.Loader
// contract. Every adapter re-reads its source on each Load, so a reload
// trigger always observes the source's current content. The adapters own no
// parsing rules of their own; they delegate to codecs and libraries.
package loaders

import (
	"context"
	"fmt"
	"os"

	"github.com/zoobzio/relay"
)

// File returns a Loader that reads path on every load and decodes it with a
// codec chosen by file extension: .json, .toml, or YAML for everything else.
func File[T any](path string) relay.LoaderFunc[T] {
	return FileWith[T](path, codecForPath(path))
}

// FileWith returns a Loader that reads path on every load and decodes it
// with the given codec.
func FileWith[T any](path string, codec Codec) relay.LoaderFunc[T] {
	return func(_ context.Context) (T, error) {
		var cfg T
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := codec.Unmarshal(data, &cfg); err != nil {
			var zero T
			return zero, fmt.Errorf("failed to decode %s as %s: %w", path, codec.ContentType(), err)
		}
		return cfg, nil
	}
}
