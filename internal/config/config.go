package config

import (
	"github.com/go-sod/rango/internal/bench"
	"github.com/go-sod/rango/internal/database"
	"github.com/go-sod/rango/internal/setup"
)

var (
	_ setup.DatabaseConfigProvider = (*Config)(nil)
	_ setup.LoggingConfigProvider  = (*Config)(nil)
	_ setup.BenchConfigProvider    = (*Config)(nil)
)

const (
	GeneratorTypeRandom = "RANDOM"
	GeneratorTypeKnown  = "KNOWN"
)

type Config struct {
	// Number of generated points, ignored when a stored dataset is loaded
	Points     int    `envconfig:"RANGO_POINTS" default:"1000"`
	Dimensions int    `envconfig:"RANGO_DIMENSIONS" default:"3"`
	Generator  string `envconfig:"RANGO_GENERATOR" default:"RANDOM"`
	// Seed of point and window generation, 0 picks a random one
	Seed     uint32 `envconfig:"RANGO_SEED" default:"1"`
	MaxCoord int    `envconfig:"RANGO_MAX_COORD" default:"1000000"`
	// Validate the built structure before querying it
	Validate bool `envconfig:"RANGO_VALIDATE" default:"true"`
	// Dump the built structure to stdout, only sensible for a handful of points
	Dump bool `envconfig:"RANGO_DUMP" default:"false"`
	// Dataset name to load from or save to the db
	Dataset     string `envconfig:"RANGO_DATASET"`
	DatasetSave bool   `envconfig:"RANGO_DATASET_SAVE" default:"false"`

	LogLevel       string `envconfig:"RANGO_LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"RANGO_LOG_DEVELOPMENT" default:"false"`

	Database database.Config
	Bench    bench.Config
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) LoggingConfig() (string, bool) {
	return c.LogLevel, c.LogDevelopment
}

func (c *Config) BenchConfig() *bench.Config {
	return &c.Bench
}
