package sortbench

import "golang.org/x/exp/constraints"

type (
	// A Sorter sorts slices of ordered elements.
	//
	// Sort must accept empty and single-element slices. It returns a new
	// slice with the same elements as input in non-decreasing order, and
	// never modifies input, not even when the underlying algorithm sorts
	// in place.
	Sorter[T constraints.Ordered] interface {
		Sort(input []T) []T
	}

	// A SorterFunc is an ordinary function that satisfies Sorter.
	SorterFunc[T constraints.Ordered] func(input []T) []T

	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()

	// A Predicate is a function that receives no parameters and returns
	// a bool.
	Predicate func() bool

	// A RangeFunc is a function that receives a range from low to high,
	// with 0 <= low <= high.
	RangeFunc func(low, high int)

	// A RangePredicate is a function that receives a range from low to
	// high, with 0 <= low <= high, and returns a bool.
	RangePredicate func(low, high int) bool
)

// Sort calls f(input).
func (f SorterFunc[T]) Sort(input []T) []T {
	return f(input)
}

/*
Compare is the three-way comparison that all strategies order their
elements by. It returns -1 if a < b, +1 if a > b, and 0 otherwise.

Floating-point NaNs are not totally ordered, and compare equal to
everything.
*/
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
