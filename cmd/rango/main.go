package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"

	"github.com/go-sod/rango/internal/bench"
	"github.com/go-sod/rango/internal/buildinfo"
	"github.com/go-sod/rango/internal/config"
	"github.com/go-sod/rango/internal/dataset/database"
	"github.com/go-sod/rango/internal/dataset/model"
	"github.com/go-sod/rango/internal/geom"
	"github.com/go-sod/rango/internal/logging"
	"github.com/go-sod/rango/internal/setup"
	"github.com/go-sod/rango/internal/shutdown"
	"github.com/go-sod/rango/internal/srvenv"
	"github.com/go-sod/rango/internal/workload"
	"github.com/go-sod/rango/pkg/container/brute"
	"github.com/go-sod/rango/pkg/container/rangetree"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	defer done()

	if err := run(ctx); err != nil {
		done()
		logging.FromContext(ctx).Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg := config.Config{}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close(ctx)

	logger := env.Logger().With("run", uuid.New().String())
	ctx = logging.WithLogger(ctx, logger)
	rng := geom.NewRNG(cfg.Seed)

	points, err := loadPoints(ctx, &cfg, env, rng)
	if err != nil {
		return fmt.Errorf("loadPoints: %w", err)
	}
	items := geom.Items(points)

	start := time.Now()
	tree, err := rangetree.New(items, cfg.Dimensions)
	if err != nil {
		return fmt.Errorf("rangetree.New: %w", err)
	}
	stats := tree.Stats()
	logger.Infow("range tree built",
		"points", stats.Points,
		"dimensions", cfg.Dimensions,
		"nodes", stats.Nodes,
		"trees", stats.Trees,
		"height", stats.Height,
		"elapsed", time.Since(start).String(),
	)

	if cfg.Validate {
		if err := rangetree.Validate(tree); err != nil {
			return fmt.Errorf("rangetree.Validate: %w", err)
		}
		logger.Info("range tree invariants hold")
	}
	if cfg.Dump {
		spew.Fdump(os.Stdout, tree)
	}

	windows, err := loadWindows(&cfg, rng)
	if err != nil {
		return fmt.Errorf("loadWindows: %w", err)
	}

	runner := env.Runner()
	report, err := runner.Run(ctx, "rangetree", tree, windows)
	if err != nil {
		return fmt.Errorf("runner.Run: %w", err)
	}
	logReport(ctx, report)

	if cfg.Bench.Compare {
		scan, err := brute.New(items, cfg.Dimensions)
		if err != nil {
			return fmt.Errorf("brute.New: %w", err)
		}
		scanReport, err := runner.Run(ctx, "brute", scan, windows)
		if err != nil {
			return fmt.Errorf("runner.Run: %w", err)
		}
		logReport(ctx, scanReport)
		if err := runner.Compare(ctx, tree, scan, windows); err != nil {
			return fmt.Errorf("runner.Compare: %w", err)
		}
		logger.Infof("%d windows agree with the linear scan", len(windows))
	}
	return nil
}

func loadPoints(ctx context.Context, cfg *config.Config, env *srvenv.SrvEnv, rng *fastrand.RNG) ([]geom.Point, error) {
	logger := logging.FromContext(ctx)
	var datasets *database.DB
	if env.Database() != nil {
		datasets = database.New(env.Database())
	}

	if cfg.Dataset != "" && !cfg.DatasetSave {
		if datasets == nil {
			return nil, fmt.Errorf("dataset %s requested without RANGO_DB_FILE", cfg.Dataset)
		}
		d, err := datasets.Find(ctx, cfg.Dataset)
		if err != nil {
			return nil, err
		}
		logger.Infof("loaded dataset %s (%s) with %d points", d.Name, d.ID, d.Len())
		cfg.Dimensions = d.Dimensions
		return d.Points, nil
	}

	var points []geom.Point
	switch cfg.Generator {
	case config.GeneratorTypeRandom:
		points = geom.Random(rng, cfg.Points, cfg.Dimensions, cfg.MaxCoord)
	case config.GeneratorTypeKnown:
		points = geom.Known(cfg.Points, cfg.Dimensions)
	default:
		return nil, fmt.Errorf("unknown generator type: %s", cfg.Generator)
	}

	if cfg.DatasetSave {
		if datasets == nil || cfg.Dataset == "" {
			return nil, fmt.Errorf("saving a dataset needs RANGO_DATASET and RANGO_DB_FILE")
		}
		d := model.NewDataset(cfg.Dataset, cfg.Dimensions, points, time.Now().UTC())
		if err := datasets.Store(ctx, d); err != nil {
			return nil, err
		}
		logger.Infof("stored dataset %s (%s) with %d points", d.Name, d.ID, d.Len())
	}
	return points, nil
}

func loadWindows(cfg *config.Config, rng *fastrand.RNG) ([]workload.Window, error) {
	if cfg.Bench.WorkloadFile != "" {
		return workload.Load(cfg.Bench.WorkloadFile, cfg.Dimensions)
	}
	return workload.Random(rng, cfg.Bench.Queries, cfg.Dimensions, cfg.MaxCoord), nil
}

func logReport(ctx context.Context, r *bench.Report) {
	logging.FromContext(ctx).Infow("workload finished",
		"searcher", r.Name,
		"queries", r.Queries,
		"matches", r.Matches,
		"elapsed", r.Elapsed.String(),
		"min", r.Min.String(),
		"mean", r.Mean.String(),
		"p50", r.P50.String(),
		"p99", r.P99.String(),
		"max", r.Max.String(),
	)
}
