package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/go-sod/rango/internal/bench"
	"github.com/go-sod/rango/internal/database"
	"github.com/go-sod/rango/internal/logging"
	"github.com/go-sod/rango/internal/srvenv"
)

type LoggingConfigProvider interface {
	LoggingConfig() (level string, development bool)
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type BenchConfigProvider interface {
	BenchConfig() *bench.Config
}

// Setup fills config from the environment and builds the components its
// providers ask for.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	logger := logging.FromContext(ctx)
	if loggingConfigProvider, ok := config.(LoggingConfigProvider); ok {
		logger = logging.NewLogger(loggingConfigProvider.LoggingConfig())
		serverEnvOpts = append(serverEnvOpts, srvenv.WithLogger(logger))
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().FileName != "" {
		logger.Info("Configuring db")
		db, err := database.NewFromEnv(logging.WithLogger(ctx, logger), dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if benchConfigProvider, ok := config.(BenchConfigProvider); ok {
		logger.Info("Configuring bench runner")
		cfg := benchConfigProvider.BenchConfig()
		serverEnvOpts = append(serverEnvOpts, srvenv.WithRunner(bench.New(bench.WithWorkers(cfg.Workers))))
	}

	return srvenv.New(serverEnvOpts...), nil
}
