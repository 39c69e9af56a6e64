package setup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-sod/rango/internal/bench"
	"github.com/go-sod/rango/internal/database"
)

type testConfig struct {
	Level    string `envconfig:"RANGO_TEST_LOG_LEVEL" default:"debug"`
	Database database.Config
	Bench    bench.Config
}

func (c *testConfig) LoggingConfig() (string, bool)    { return c.Level, false }
func (c *testConfig) DatabaseConfig() *database.Config { return &c.Database }
func (c *testConfig) BenchConfig() *bench.Config       { return &c.Bench }

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.db")
	t.Setenv("RANGO_DB_FILE", path)
	t.Setenv("RANGO_WORKERS", "3")

	cfg := &testConfig{}
	env, err := Setup(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer env.Close(context.Background())

	if cfg.Database.FileName != path {
		t.Errorf("db file got: %q, expected: %q", cfg.Database.FileName, path)
	}
	if cfg.Bench.Workers != 3 || cfg.Bench.Queries != 100 {
		t.Errorf("bench config not processed: %+v", cfg.Bench)
	}
	if env.Database() == nil {
		t.Errorf("database should be opened when a file is configured")
	}
	if env.Logger() == nil || env.Runner() == nil {
		t.Errorf("logger and runner must be provided")
	}
}

func TestSetup_NoDatabase(t *testing.T) {
	t.Setenv("RANGO_DB_FILE", "")

	env, err := Setup(context.Background(), &testConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Database() != nil {
		t.Errorf("database must stay closed without a file name")
	}
	if err := env.Close(context.Background()); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestSetup_BadEnv(t *testing.T) {
	t.Setenv("RANGO_WORKERS", "many")

	if _, err := Setup(context.Background(), &testConfig{}); err == nil {
		t.Errorf("malformed integer must be rejected")
	}
}
