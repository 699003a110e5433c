package config

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a *T loaded from the JSON file at path.
// The value is tagged with the module name, so consumers request it with `name:"<name>"`.
// A *slog.Logger from the container is used unless WithLogger is passed.
// With WithSaveOnStop the value is written back to path when the application stops.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule[T any](name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)
	moduleOpts := []fx.Option{
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) (*T, error) {
					value, err := Load[T](path, withContainerLogger(logger, opts)...)
					if err != nil {
						return nil, err
					}

					return &value, nil
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(nameTag),
			),
		),
	}

	if newOptions(opts).SaveOnStop {
		moduleOpts = append(moduleOpts, fx.Invoke(
			fx.Annotate(
				func(lifecycle fx.Lifecycle, logger *slog.Logger, value *T) {
					lifecycle.Append(fx.Hook{
						OnStop: func(context.Context) error {
							return Save(value, path, withContainerLogger(logger, opts)...)
						},
					})
				},
				fx.ParamTags("", `optional:"true"`, nameTag),
			),
		))
	}

	return fx.Module(name, moduleOpts...)
}

// withContainerLogger puts the injected logger ahead of opts so an explicit WithLogger still wins.
func withContainerLogger(logger *slog.Logger, opts []Option) []Option {
	if logger == nil {
		return opts
	}

	return append([]Option{WithLogger(logger)}, opts...)
}
