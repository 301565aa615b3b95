package loaders

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/zoobzio/relay"
)

// Viper returns a Loader that re-reads the viper instance's configuration
// and unmarshals the whole tree into T. Viper's own layering (defaults,
// environment bindings, explicit sets) applies as usual.
//
// Viper instances are not safe for concurrent mutation; do not reconfigure
// v while a session is using the loader.
func Viper[T any](v *viper.Viper) relay.LoaderFunc[T] {
	return func(_ context.Context) (T, error) {
		var cfg T
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		return cfg, nil
	}
}

// ViperKey returns a Loader that re-reads the viper instance's configuration
// and unmarshals only the subtree at key into T.
func ViperKey[T any](v *viper.Viper, key string) relay.LoaderFunc[T] {
	return func(_ context.Context) (T, error) {
		var cfg T
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := v.UnmarshalKey(key, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal key %s: %w", key, err)
		}
		return cfg, nil
	}
}
