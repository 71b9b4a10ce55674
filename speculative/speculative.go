/*
Package speculative provides predicates that are evaluated in
parallel, similar to Do and Range in package parallel, except that
the implementations here terminate early as soon as the result is
known: And and RangeAnd return false as soon as any of the predicates
invoked in parallel returns false.

Panics are handled similar to package parallel. However, panics may
not propagate to the invoking goroutine when the result becomes known
early.

None of the functions stop the execution of predicates that may still
be running in parallel in case of early termination. Predicates that
do a lot of work should therefore check some shared flag to stop
gracefully, as IsSorted in package sort does.
*/
package speculative

import (
	"fmt"
	"sync"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/internal"
)

/*
And receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true
if all of them return true; or And returns false when at least one of
them returns false, without waiting for the other predicates to
terminate.
*/
func And(predicates ...sortbench.Predicate) bool {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b1 bool
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	half := len(predicates) / 2
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		b1 = And(predicates[half:]...)
	}()
	if !And(predicates[:half]...) {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

/*
RangeAnd receives a range, a batch count, and a RangePredicate
function, divides the range into batches, and invokes the range
predicate for each of these batches in parallel.

The range is specified by a low and high integer, with low <=
high. The batches are determined by dividing up the size of the range
(high - low) by n. If n is 0, a reasonable default is used that takes
runtime.GOMAXPROCS(0) into account.

RangeAnd returns true if all range predicates return true; or false
when at least one of them returns false, without waiting for the
other range predicates to terminate.

RangeAnd panics if high < low, or if n < 0.
*/
func RangeAnd(low, high, n int, f sortbench.RangePredicate) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			return And(
				func() bool { return recur(low, mid, half) },
				func() bool { return recur(mid, high, n-half) },
			)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
