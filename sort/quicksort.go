package sort

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/parallel"
	"github.com/exascience/sortbench/sequential"
)

// DefaultGrainSize is the partition size below which the parallel
// dispatches sort sequentially, unless changed with WithGrainSize.
const DefaultGrainSize = 0x500

// Dispatch determines how Quicksort sorts the two partitions of each
// step.
type Dispatch int

const (
	// Sequential sorts both partitions in the calling goroutine.
	Sequential Dispatch = iota

	// Threads sorts the partitions in parallel with parallel.Do: one
	// in a new goroutine, and one in the calling goroutine.
	Threads

	// Tasks spawns a parallel.Future for each partition on a
	// parallel.Pool, and waits for both.
	Tasks
)

func (d Dispatch) String() string {
	switch d {
	case Sequential:
		return "sequential"
	case Threads:
		return "threads"
	case Tasks:
		return "tasks"
	default:
		return fmt.Sprintf("Dispatch(%d)", int(d))
	}
}

type options struct {
	dispatch  Dispatch
	grainSize int
	pool      *parallel.Pool
}

// An Option configures a Quicksort.
type Option func(*options)

// WithDispatch sets how partitions are sorted. The default is
// Sequential.
func WithDispatch(d Dispatch) Option {
	return func(o *options) { o.dispatch = d }
}

// WithGrainSize sets the number of elements below which the Threads
// and Tasks dispatches fall back to sequential recursion. A grain size
// of 0 forks at every level, which oversubscribes the scheduler on
// large inputs.
func WithGrainSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.grainSize = n
	}
}

// WithPool sets the pool that the Tasks dispatch spawns futures on.
// The default is parallel.DefaultPool().
func WithPool(pool *parallel.Pool) Option {
	return func(o *options) { o.pool = pool }
}

/*
Quicksort is a creating quicksort: each step chooses a pivot with its
PivotPolicy, partitions the remaining elements into newly allocated
slices of the elements strictly smaller than the pivot and of all
other elements, sorts both, and concatenates the results around the
pivot.

Elements equal to the pivot always go to the second partition.
*/
type Quicksort[T constraints.Ordered] struct {
	pivot     PivotPolicy[T]
	dispatch  Dispatch
	grainSize int
	pool      *parallel.Pool
	recombine func(smaller, bigger []T) ([]T, []T)
}

// NewQuicksort returns a Quicksort that chooses pivots with pivot.
func NewQuicksort[T constraints.Ordered](pivot PivotPolicy[T], opts ...Option) *Quicksort[T] {
	o := options{dispatch: Sequential, grainSize: DefaultGrainSize}
	for _, opt := range opts {
		opt(&o)
	}
	q := &Quicksort[T]{
		pivot:     pivot,
		dispatch:  o.dispatch,
		grainSize: o.grainSize,
		pool:      o.pool,
	}
	switch o.dispatch {
	case Sequential:
		q.recombine = q.sortSequential
	case Threads:
		q.recombine = q.sortThreads
	case Tasks:
		q.recombine = q.sortTasks
	default:
		panic(fmt.Sprintf("invalid dispatch: %v", o.dispatch))
	}
	return q
}

// Dispatch returns how q sorts partitions.
func (q *Quicksort[T]) Dispatch() Dispatch {
	return q.dispatch
}

// Sort implements sortbench.Sorter.
func (q *Quicksort[T]) Sort(input []T) []T {
	if len(input) < 2 {
		return slices.Clone(input)
	}
	return q.sort(input)
}

// sort never modifies s. For len(s) < 2 it returns s itself, which is
// safe because every caller other than Sort passes a partition that it
// owns.
func (q *Quicksort[T]) sort(s []T) []T {
	if len(s) < 2 {
		return s
	}
	index := q.pivot(s)
	pivot := s[index]
	smaller, bigger := partition(s, index)
	smaller, bigger = q.recombine(smaller, bigger)
	result := make([]T, 0, len(s))
	result = append(result, smaller...)
	result = append(result, pivot)
	return append(result, bigger...)
}

// partition splits all elements of s except s[index] into the ones
// that are strictly smaller than s[index], and the others.
func partition[T constraints.Ordered](s []T, index int) (smaller, bigger []T) {
	pivot := s[index]
	for i, e := range s {
		if i == index {
			continue
		}
		if sortbench.Compare(e, pivot) < 0 {
			smaller = append(smaller, e)
		} else {
			bigger = append(bigger, e)
		}
	}
	return
}

func (q *Quicksort[T]) sortSequential(smaller, bigger []T) (left, right []T) {
	sequential.Do(
		func() { left = q.sort(smaller) },
		func() { right = q.sort(bigger) },
	)
	return
}

func (q *Quicksort[T]) sortThreads(smaller, bigger []T) (left, right []T) {
	if len(smaller)+len(bigger) < q.grainSize {
		return q.sortSequential(smaller, bigger)
	}
	parallel.Do(
		func() { left = q.sort(smaller) },
		func() { right = q.sort(bigger) },
	)
	return
}

func (q *Quicksort[T]) sortTasks(smaller, bigger []T) ([]T, []T) {
	if len(smaller)+len(bigger) < q.grainSize {
		return q.sortSequential(smaller, bigger)
	}
	left := parallel.Spawn(q.pool, func() []T { return q.sort(smaller) })
	right := parallel.Spawn(q.pool, func() []T { return q.sort(bigger) })
	return left.Get(), right.Get()
}
