package bench

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/exascience/sortbench/logutil"
	"github.com/exascience/sortbench/sort"
)

// An Order determines how benchmark input is generated.
type Order string

const (
	// Random input is drawn uniformly from [0, MaxValue).
	Random Order = "random"

	// Ordered input is 0, 1, ..., n-1.
	Ordered Order = "ordered"
)

// ErrInvalidConfig is wrapped by all errors returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config describes a benchmark. It is usually read from a TOML file.
type Config struct {
	// Sizes are the input lengths to benchmark.
	Sizes []int `toml:"sizes"`

	// Runs is the number of timed runs per strategy, order, and size.
	Runs int `toml:"runs"`

	// Seed seeds input generation, random pivots, and shuffling. Zero
	// uses the process-wide random source.
	Seed int64 `toml:"seed"`

	// MaxValue bounds the elements of random input.
	MaxValue int `toml:"max-value"`

	Orders []Order `toml:"orders"`

	// Strategies selects strategies by name. Empty selects all.
	Strategies []string `toml:"strategies"`

	// GrainSize is the partition size below which the parallel
	// quicksorts recurse sequentially. Zero forks at every level.
	GrainSize int `toml:"grain-size"`

	// PoolSize is the number of workers for the task-parallel
	// quicksort. Zero or less uses parallel.DefaultPoolSize().
	PoolSize int `toml:"pool-size"`

	Log logutil.LogConfig `toml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Sizes:     []int{1000, 10000},
		Runs:      5,
		MaxValue:  1 << 30,
		Orders:    []Order{Random, Ordered},
		GrainSize: sort.DefaultGrainSize,
		Log:       logutil.DefaultLogConfig(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, undecoded, path)
	}
	return cfg, nil
}

// Validate checks that cfg describes a runnable benchmark.
func (cfg *Config) Validate() error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, size := range cfg.Sizes {
		if size < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, size)
		}
	}
	if cfg.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, cfg.Runs)
	}
	if cfg.MaxValue <= 0 {
		return fmt.Errorf("%w: max-value must be positive, got %d", ErrInvalidConfig, cfg.MaxValue)
	}
	if len(cfg.Orders) == 0 {
		return fmt.Errorf("%w: no orders", ErrInvalidConfig)
	}
	for _, order := range cfg.Orders {
		if order != Random && order != Ordered {
			return fmt.Errorf("%w: unknown order %q", ErrInvalidConfig, order)
		}
	}
	if cfg.GrainSize < 0 {
		return fmt.Errorf("%w: negative grain-size %d", ErrInvalidConfig, cfg.GrainSize)
	}
	return nil
}
