package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/sortbench/bench"
)

func TestApplyFlags(t *testing.T) {
	require.NoError(t, flag.CommandLine.Parse([]string{
		"-sizes", "10, 20,",
		"-runs", "3",
		"-orders", "ordered",
		"-strategies", "baseline,quick-tasks",
		"-grain", "0",
		"-log-level", "debug",
	}))

	cfg := bench.DefaultConfig()
	cfg.GrainSize = 99
	require.NoError(t, applyFlags(&cfg))
	require.Equal(t, []int{10, 20}, cfg.Sizes)
	require.Equal(t, 3, cfg.Runs)
	require.Equal(t, []bench.Order{bench.Ordered}, cfg.Orders)
	require.Equal(t, []string{"baseline", "quick-tasks"}, cfg.Strategies)
	require.Equal(t, 0, cfg.GrainSize)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, bench.DefaultConfig().MaxValue, cfg.MaxValue)
	require.NoError(t, cfg.Validate())
}

func TestParseInts(t *testing.T) {
	n, err := parseInts("1,2,3")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, n)

	_, err = parseInts("1,x")
	require.Error(t, err)
}
