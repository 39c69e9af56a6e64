package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/rango/internal/logging"
	"github.com/go-sod/rango/internal/workload"
	"github.com/go-sod/rango/pkg/container/rangetree"
)

var ErrMismatch = errors.New("searchers disagree")

type Searcher interface {
	QueryContext(ctx context.Context, a, b rangetree.Point) ([]rangetree.Point, error)
	Len() int
}

type IDSearcher interface {
	QueryIDs(a, b rangetree.Point) ([]int, error)
}

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

type Option func(*Runner)

func New(opts ...Option) *Runner {
	r := &Runner{workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Runner executes workloads with at most workers queries in flight.
type Runner struct {
	workers int
}

type Result struct {
	Window  string
	Matches int
	Latency time.Duration
}

type Report struct {
	Name    string
	Points  int
	Queries int
	Matches int
	Elapsed time.Duration
	Min     time.Duration
	Max     time.Duration
	Mean    time.Duration
	P50     time.Duration
	P99     time.Duration
	Results []Result
}

func (r *Runner) Run(ctx context.Context, name string, s Searcher, windows []workload.Window) (*Report, error) {
	logger := logging.FromContext(ctx)
	results := make([]Result, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	start := time.Now()
	for i := range windows {
		i := i
		g.Go(func() error {
			w := windows[i]
			t := time.Now()
			found, err := s.QueryContext(gctx, w.Lower, w.Upper)
			if err != nil {
				return fmt.Errorf("query %s: %w", w.Name, err)
			}
			results[i] = Result{Window: w.Name, Matches: len(found), Latency: time.Since(t)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := summarize(name, results)
	report.Points = s.Len()
	report.Elapsed = time.Since(start)
	logger.Debugf("%s: %d queries over %d points in %s", name, report.Queries, report.Points, report.Elapsed)
	return report, nil
}

// Compare runs every window against both searchers and fails on the first
// window whose match sets differ.
func (r *Runner) Compare(ctx context.Context, a, b IDSearcher, windows []workload.Window) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range windows {
		w := windows[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := a.QueryIDs(w.Lower, w.Upper)
			if err != nil {
				return fmt.Errorf("query %s: %w", w.Name, err)
			}
			y, err := b.QueryIDs(w.Lower, w.Upper)
			if err != nil {
				return fmt.Errorf("query %s: %w", w.Name, err)
			}
			if !sameIDs(x, y) {
				return fmt.Errorf("%w: %s matched %d and %d points", ErrMismatch, w.Name, len(x), len(y))
			}
			return nil
		})
	}
	return g.Wait()
}

func summarize(name string, results []Result) *Report {
	report := &Report{Name: name, Queries: len(results), Results: results}
	if len(results) == 0 {
		return report
	}

	latencies := make([]time.Duration, len(results))
	var total time.Duration
	for i, res := range results {
		latencies[i] = res.Latency
		total += res.Latency
		report.Matches += res.Matches
	}
	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	report.Min = latencies[0]
	report.Max = latencies[len(latencies)-1]
	report.Mean = total / time.Duration(len(latencies))
	report.P50 = percentile(latencies, 50)
	report.P99 = percentile(latencies, 99)
	return report
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	idx := (len(sorted)*p+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

func sameIDs(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	a := append([]int(nil), x...)
	b := append([]int(nil), y...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
