package srvenv

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-sod/rango/internal/bench"
	"github.com/go-sod/rango/internal/database"
	"github.com/go-sod/rango/internal/logging"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database *database.DB
	logger   *zap.SugaredLogger
	runner   *bench.Runner
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

// Logger returns the configured logger, or the default one.
func (s *SrvEnv) Logger() *zap.SugaredLogger {
	if s.logger == nil {
		return logging.DefaultLogger()
	}
	return s.logger
}

// Runner returns the configured runner, or a sequential one.
func (s *SrvEnv) Runner() *bench.Runner {
	if s.runner == nil {
		return bench.New()
	}
	return s.runner
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.logger = logger
		return s
	}
}

func WithRunner(r *bench.Runner) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.runner = r
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
