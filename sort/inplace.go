package sort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/exascience/sortbench"
)

/*
InPlace is a quicksort that sorts a private copy of its input in
place. The pivot of each range is its first element. Every element
that is smaller than the pivot is removed from its position and
reinserted at the position of the pivot, which moves one to the
right. Each relocation shifts all elements in between, so InPlace is
considerably slower than Quicksort with FirstElement, despite the
same asymptotic complexity.
*/
type InPlace[T constraints.Ordered] struct{}

// Sort implements sortbench.Sorter.
func (InPlace[T]) Sort(input []T) []T {
	s := slices.Clone(input)
	inPlace(s, 0, len(s)-1)
	return s
}

// inPlace sorts s[start:end+1].
func inPlace[T constraints.Ordered](s []T, start, end int) {
	if start >= end {
		return
	}
	pivot := s[start]
	p := start
	for i := start + 1; i <= end; i++ {
		if sortbench.Compare(s[i], pivot) < 0 {
			e := s[i]
			copy(s[p+1:i+1], s[p:i])
			s[p] = e
			p++
		}
	}
	inPlace(s, start, p-1)
	inPlace(s, p+1, end)
}
