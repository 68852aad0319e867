package cli

import (
	"context"

	"github.com/rshade/atlasd/internal/config"
)

// configKey is the context key under which the loaded config travels from
// the root command's PersistentPreRunE to subcommand RunE functions.
type configKey struct{}

// contextWithConfig stores cfg in ctx.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the config stored in ctx, or the defaults when
// none is present (e.g. a subcommand invoked directly in tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
