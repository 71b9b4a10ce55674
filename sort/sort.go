/*
Package sort provides interchangeable sorting strategies for slices of
ordered elements.

All strategies implement sortbench.Sorter: Sort never modifies its
input and returns a new sorted slice. Baseline delegates to the
library sort, Bubble is a classic exchange sort, Quicksort is a
creating quicksort that builds new slices at each step and can sort
its partitions sequentially or in parallel, and InPlace is a quicksort
that relocates elements within a private copy.
*/
package sort

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/speculative"
)

// Baseline sorts a copy of its input with the general-purpose sort of
// golang.org/x/exp/slices. It serves as the reference for the other
// strategies.
type Baseline[T constraints.Ordered] struct{}

// Sort implements sortbench.Sorter.
func (Baseline[T]) Sort(input []T) []T {
	s := slices.Clone(input)
	slices.Sort(s)
	return s
}

// Bubble sorts a copy of its input by repeatedly swapping adjacent
// elements that are out of order. Each pass shrinks the unsorted
// prefix by one element, and sorting stops after a pass without
// swaps.
type Bubble[T constraints.Ordered] struct{}

// Sort implements sortbench.Sorter.
func (Bubble[T]) Sort(input []T) []T {
	s := slices.Clone(input)
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if sortbench.Compare(s[i-1], s[i]) > 0 {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return s
}

/*
IsSorted determines whether s is in non-decreasing order. Slices of
at least DefaultGrainSize elements are checked in parallel, and the
check attempts to terminate early when the return value is false.
*/
func IsSorted[T constraints.Ordered](s []T) bool {
	size := len(s)
	if size < DefaultGrainSize {
		return slices.IsSorted(s)
	}
	var done atomic.Bool
	defer done.Store(true)
	return speculative.RangeAnd(1, size, 0, func(low, high int) bool {
		for i := low; i < high; i++ {
			if ((i % 1024) == 0) && done.Load() {
				return false
			}
			if sortbench.Compare(s[i], s[i-1]) < 0 {
				return false
			}
		}
		return true
	})
}
