package sort

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/parallel"
)

// Names of the strategies returned by Strategies.
const (
	NameBaseline     = "baseline"
	NameBubble       = "bubble"
	NameQuickFirst   = "quick-first"
	NameQuickRandom  = "quick-random"
	NameQuickMedian  = "quick-median"
	NameQuickThreads = "quick-threads"
	NameQuickTasks   = "quick-tasks"
	NameQuickInPlace = "quick-inplace"
)

// ErrUnknownStrategy is returned by Select for names that are not
// registered.
var ErrUnknownStrategy = errors.New("unknown sort strategy")

// A Strategy is a Sorter together with the name it is registered
// under.
type Strategy[T constraints.Ordered] struct {
	Name   string
	Sorter sortbench.Sorter[T]
}

// QuickFirst returns a sequential Quicksort with the first-element
// pivot policy.
func QuickFirst[T constraints.Ordered]() *Quicksort[T] {
	return NewQuicksort(FirstElement[T]())
}

// QuickRandom returns a sequential Quicksort that draws pivots from
// src.
func QuickRandom[T constraints.Ordered](src sortbench.Source) *Quicksort[T] {
	return NewQuicksort(RandomElement[T](src))
}

// QuickMedian returns a sequential Quicksort with the median-of-three
// pivot policy.
func QuickMedian[T constraints.Ordered]() *Quicksort[T] {
	return NewQuicksort(MedianOfThree[T]())
}

// QuickThreads returns a median-of-three Quicksort that sorts
// partitions in parallel goroutines.
func QuickThreads[T constraints.Ordered](opts ...Option) *Quicksort[T] {
	return NewQuicksort(MedianOfThree[T](), append([]Option{WithDispatch(Threads)}, opts...)...)
}

// QuickTasks returns a median-of-three Quicksort that sorts partitions
// as futures on pool. If pool is nil, parallel.DefaultPool() is used.
func QuickTasks[T constraints.Ordered](pool *parallel.Pool, opts ...Option) *Quicksort[T] {
	return NewQuicksort(MedianOfThree[T](), append([]Option{WithDispatch(Tasks), WithPool(pool)}, opts...)...)
}

/*
Strategies returns all registered strategies in a fixed order. The
random pivot policy draws from src, and the Tasks dispatch spawns on
pool. The options are passed to the parallel quicksorts.
*/
func Strategies[T constraints.Ordered](src sortbench.Source, pool *parallel.Pool, opts ...Option) []Strategy[T] {
	return []Strategy[T]{
		{NameBaseline, Baseline[T]{}},
		{NameBubble, Bubble[T]{}},
		{NameQuickFirst, QuickFirst[T]()},
		{NameQuickRandom, QuickRandom[T](src)},
		{NameQuickMedian, QuickMedian[T]()},
		{NameQuickThreads, QuickThreads[T](opts...)},
		{NameQuickTasks, QuickTasks[T](pool, opts...)},
		{NameQuickInPlace, InPlace[T]{}},
	}
}

// Select returns the strategies of all with the given names, in the
// order of names. If names is empty, all is returned.
func Select[T constraints.Ordered](all []Strategy[T], names ...string) ([]Strategy[T], error) {
	if len(names) == 0 {
		return all, nil
	}
	result := make([]Strategy[T], 0, len(names))
outer:
	for _, name := range names {
		for _, s := range all {
			if s.Name == name {
				result = append(result, s)
				continue outer
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return result, nil
}
