package bench

type Config struct {
	// Number of random windows when no workload file is given
	Queries int `envconfig:"RANGO_QUERIES" default:"100"`
	// Maximum number of queries in flight
	Workers int `envconfig:"RANGO_WORKERS" default:"4"`
	// TOML file with the windows to run
	WorkloadFile string `envconfig:"RANGO_WORKLOAD_FILE"`
	// Cross-check every window against a linear scan
	Compare bool `envconfig:"RANGO_COMPARE" default:"false"`
}
