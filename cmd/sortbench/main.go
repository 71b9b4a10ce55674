// Command sortbench benchmarks the sorting strategies of sortbench on
// random and ordered integer input and prints per-strategy timings.
//
// Usage:
//
//	sortbench [-config bench.toml] [-sizes 1000,10000] [-runs 5] [-seed 1]
//	          [-strategies baseline,quick-threads] [-orders random,ordered]
//	          [-grain 1280] [-pool 0] [-log-level info]
//
// Flags that are given override the values of the config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/exascience/sortbench/bench"
	"github.com/exascience/sortbench/logutil"
)

var (
	configFile = flag.String("config", "", "TOML benchmark config file")
	sizes      = flag.String("sizes", "", "comma-separated input sizes")
	runs       = flag.Int("runs", 0, "timed runs per strategy, order, and size")
	seed       = flag.Int64("seed", 0, "random seed, 0 for a random sequence")
	strategies = flag.String("strategies", "", "comma-separated strategy names, empty for all")
	orders     = flag.String("orders", "", "comma-separated input orders (random, ordered)")
	grain      = flag.Int("grain", 0, "partition size below which parallel quicksorts run sequentially")
	pool       = flag.Int("pool", 0, "worker pool size of the task-parallel quicksort")
	logLevel   = flag.String("log-level", "", "log level")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		logutil.Error("sortbench failed", zap.Error(err))
		syncLogger()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	syncLogger()
}

func syncLogger() {
	if err := logutil.Sync(); err != nil {
		fmt.Fprintln(os.Stderr, "sync log:", err)
	}
}

func run() error {
	cfg := bench.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configFile); err != nil {
			return err
		}
	}
	if err := applyFlags(&cfg); err != nil {
		return err
	}
	if err := logutil.SetupLogger(&cfg.Log); err != nil {
		return err
	}

	r, err := bench.NewRunner(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := r.Run(ctx)
	if len(results) > 0 {
		if rerr := bench.Report(os.Stdout, results); rerr != nil && err == nil {
			err = rerr
		}
	}
	return err
}

func applyFlags(cfg *bench.Config) (err error) {
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "sizes":
			cfg.Sizes, err = parseInts(*sizes)
		case "runs":
			cfg.Runs = *runs
		case "seed":
			cfg.Seed = *seed
		case "strategies":
			cfg.Strategies = splitList(*strategies)
		case "orders":
			cfg.Orders = nil
			for _, o := range splitList(*orders) {
				cfg.Orders = append(cfg.Orders, bench.Order(o))
			}
		case "grain":
			cfg.GrainSize = *grain
		case "pool":
			cfg.PoolSize = *pool
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	return err
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func parseInts(s string) ([]int, error) {
	var result []int
	for _, item := range splitList(s) {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", item, err)
		}
		result = append(result, n)
	}
	return result, nil
}
