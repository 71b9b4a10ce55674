/*
Package bench measures the relative performance of the strategies of
package sort on random and on already ordered input.

For every order and size, a Runner generates one input and sorts it
with every selected strategy, Runs times. The order in which the
strategies run is shuffled for every run, so that no strategy
consistently benefits from warm caches. Every output is checked
before its time is recorded.
*/
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/logutil"
	"github.com/exascience/sortbench/parallel"
	"github.com/exascience/sortbench/sort"
)

// ErrIncorrectResult is returned by Runner.Run when a strategy returns
// a result that is not sorted or has the wrong length, or when it
// modifies its input.
var ErrIncorrectResult = errors.New("incorrect sort result")

// A Result summarizes the timed runs of one strategy on one kind of
// input.
type Result struct {
	Strategy string
	Order    Order
	Size     int
	Runs     int
	Mean     time.Duration
	StdDev   time.Duration
	Min      time.Duration
	Max      time.Duration
}

// A Runner executes the benchmark described by a Config.
type Runner struct {
	cfg        Config
	src        sortbench.Source
	pool       *parallel.Pool
	strategies []sort.Strategy[int]
}

// A RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStrategies replaces the registered strategies that the runner
// selects from.
func WithStrategies(strategies ...sort.Strategy[int]) RunnerOption {
	return func(r *Runner) { r.strategies = strategies }
}

// NewRunner validates cfg and prepares the selected strategies. Close
// must be called to release the worker pool of the runner.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg}
	if cfg.Seed == 0 {
		r.src = sortbench.GlobalSource()
	} else {
		r.src = sortbench.NewSource(cfg.Seed)
	}
	pool, err := parallel.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, err
	}
	r.pool = pool
	r.strategies = sort.Strategies[int](r.src, pool, sort.WithGrainSize(cfg.GrainSize))
	for _, opt := range opts {
		opt(r)
	}
	selected, err := sort.Select(r.strategies, cfg.Strategies...)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	r.strategies = selected
	return r, nil
}

// Strategies returns the names of the selected strategies.
func (r *Runner) Strategies() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name
	}
	return names
}

// Close releases the worker pool.
func (r *Runner) Close() {
	r.pool.Close()
}

/*
Run executes all benchmark cases and returns one Result per order,
size, and strategy, in that nesting.

Run checks ctx between runs only. A sort that has started always runs
to completion.
*/
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, order := range r.cfg.Orders {
		for _, size := range r.cfg.Sizes {
			caseResults, err := r.runCase(ctx, order, size)
			if err != nil {
				return results, err
			}
			results = append(results, caseResults...)
		}
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, order Order, size int) ([]Result, error) {
	logutil.Info("benchmark case started",
		zap.String("order", string(order)),
		zap.Int("size", size),
		zap.Strings("strategies", r.Strategies()),
		zap.Int("runs", r.cfg.Runs))
	input := Generate(r.src, order, size, r.cfg.MaxValue)
	reference := slices.Clone(input)

	timings := make([][]float64, len(r.strategies))
	indices := make([]int, len(r.strategies))
	for i := range indices {
		indices[i] = i
	}
	for run := 0; run < r.cfg.Runs; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.src.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		for _, index := range indices {
			s := r.strategies[index]
			start := time.Now()
			output := s.Sorter.Sort(input)
			elapsed := time.Since(start)
			if len(output) != len(input) || !sort.IsSorted(output) {
				return nil, fmt.Errorf("%w: %s on %d %s elements", ErrIncorrectResult, s.Name, size, order)
			}
			if !slices.Equal(input, reference) {
				return nil, fmt.Errorf("%w: %s modified its input of %d %s elements", ErrIncorrectResult, s.Name, size, order)
			}
			logutil.Debug("benchmark run",
				zap.String("strategy", s.Name),
				zap.Int("run", run),
				zap.Duration("elapsed", elapsed))
			timings[index] = append(timings[index], float64(elapsed))
		}
	}

	results := make([]Result, len(r.strategies))
	for i, s := range r.strategies {
		results[i] = summarize(s.Name, order, size, timings[i])
	}
	logutil.Info("benchmark case finished",
		zap.String("order", string(order)),
		zap.Int("size", size))
	return results, nil
}

// summarize computes the statistics of timings, given in nanoseconds.
func summarize(strategy string, order Order, size int, timings []float64) Result {
	result := Result{Strategy: strategy, Order: order, Size: size, Runs: len(timings)}
	if len(timings) == 0 {
		return result
	}
	mean, stdDev := stat.MeanStdDev(timings, nil)
	if len(timings) < 2 || math.IsNaN(stdDev) {
		stdDev = 0
	}
	lo, hi := timings[0], timings[0]
	for _, t := range timings[1:] {
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	result.Mean = time.Duration(mean)
	result.StdDev = time.Duration(stdDev)
	result.Min = time.Duration(lo)
	result.Max = time.Duration(hi)
	return result
}
