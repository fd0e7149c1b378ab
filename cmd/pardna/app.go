package main

import (
	"io"
	"log/slog"

	"github.com/vango-dev/pardna/internal/config"
	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/graphql"
	"github.com/vango-dev/pardna/pkg/middleware"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// loadConfig resolves the config from --config or the project root. A
// missing project config falls back to defaults.
func loadConfig(flags *globalFlags, stderr io.Writer) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
		if errors.Is(err, "P120") {
			warn(stderr, "No %s found, using defaults", config.ConfigFileName)
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if flags.endpoint != "" {
		cfg.API.Endpoint = flags.endpoint
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the GraphQL client for cfg.
func newClient(cfg *config.Config, logger *slog.Logger) *graphql.Client {
	opts := []graphql.Option{
		graphql.WithLogger(logger),
		graphql.WithTimeout(cfg.Timeout()),
		graphql.WithRefetch(cfg.Refetch()),
	}
	if cfg.API.Token != "" {
		opts = append(opts, graphql.WithHeader("Authorization", "Bearer "+cfg.API.Token))
	}
	return graphql.New(cfg.Endpoint(), opts...)
}

// newCreator decorates client with recovery, tracing and logging.
func newCreator(client pardna.Creator, logger *slog.Logger) pardna.Creator {
	return middleware.Chain(client,
		middleware.Recover(logger),
		middleware.OpenTelemetry(),
		middleware.Logging(logger),
	)
}
