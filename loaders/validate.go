package loaders

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/zoobzio/relay"
)

// validate is the shared validator instance.
var validate = validator.New()

// Validated decorates a loader with go-playground/validator struct
// validation. A loaded value that fails its validate tags is rejected, so
// an invalid configuration never reaches the session and the previous value
// stays published. T must be a struct type.
//
// Example:
//
//	type Config struct {
//	    Port int    `json:"port" validate:"min=1,max=65535"`
//	    Host string `json:"host" validate:"required"`
//	}
//
//	loader := loaders.Validated[Config](loaders.File[Config]("config.json"))
func Validated[T any](loader relay.Loader[T]) relay.LoaderFunc[T] {
	return func(ctx context.Context) (T, error) {
		cfg, err := loader.Load(ctx)
		if err != nil {
			return cfg, err
		}
		if err := validate.Struct(cfg); err != nil {
			var zero T
			return zero, fmt.Errorf("validation failed: %w", err)
		}
		return cfg, nil
	}
}
