package bench

import (
	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/parallel"
	"github.com/exascience/sortbench/sequential"
	"github.com/exascience/sortbench/sort"
)

// RandomInts returns n integers drawn uniformly from [0, limit).
func RandomInts(src sortbench.Source, n, limit int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = src.Intn(limit)
	}
	return result
}

// OrderedInts returns 0, 1, ..., n-1. Inputs of at least
// sort.DefaultGrainSize elements are filled in parallel.
func OrderedInts(n int) []int {
	result := make([]int, n)
	fill := func(low, high int) {
		for i := low; i < high; i++ {
			result[i] = i
		}
	}
	if n < sort.DefaultGrainSize {
		sequential.Range(0, n, 0, fill)
	} else {
		parallel.Range(0, n, 0, fill)
	}
	return result
}

// Generate returns input of length n in the given order. Random
// elements are drawn from [0, limit).
func Generate(src sortbench.Source, order Order, n, limit int) []int {
	if order == Ordered {
		return OrderedInts(n)
	}
	return RandomInts(src, n, limit)
}
