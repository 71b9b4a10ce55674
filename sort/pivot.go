package sort

import (
	"golang.org/x/exp/constraints"

	"github.com/exascience/sortbench"
)

// A PivotPolicy chooses the index of the pivot element in s. It is
// only invoked with len(s) >= 2.
type PivotPolicy[T constraints.Ordered] func(s []T) int

// FirstElement always chooses the first element. Quicksort degrades
// to quadratic time on sorted input with this policy.
func FirstElement[T constraints.Ordered]() PivotPolicy[T] {
	return func([]T) int { return 0 }
}

// RandomElement chooses a uniformly random index drawn from src. If
// src is nil, sortbench.GlobalSource() is used.
func RandomElement[T constraints.Ordered](src sortbench.Source) PivotPolicy[T] {
	if src == nil {
		src = sortbench.GlobalSource()
	}
	return func(s []T) int { return src.Intn(len(s)) }
}

// MedianOfThree chooses whichever of the first, middle, and last
// elements is the median. Ties resolve deterministically, see
// medianOfThree.
func MedianOfThree[T constraints.Ordered]() PivotPolicy[T] {
	return func(s []T) int {
		return medianOfThree(s, 0, len(s)/2, len(s)-1)
	}
}

func medianOfThree[T constraints.Ordered](s []T, l, m, r int) int {
	a, b, c := s[l], s[m], s[r]
	if sortbench.Compare(a, b) > 0 {
		if sortbench.Compare(b, c) > 0 {
			return m
		} else if sortbench.Compare(a, c) > 0 {
			return r
		}
		return l
	}
	if sortbench.Compare(b, c) < 0 {
		return m
	} else if sortbench.Compare(a, c) < 0 {
		return r
	}
	return l
}
