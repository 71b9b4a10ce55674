// Package sortbench provides interchangeable sorting strategies for slices of
// ordered elements, and a harness for measuring their relative performance.
//
// Every strategy implements the Sorter contract: Sort receives a slice,
// never modifies it, and returns a new slice with the same elements in
// non-decreasing order.
//
// Sortbench provides the following subpackages:
//
// sortbench/sort provides the strategies themselves: a baseline library sort,
// a bubble sort, a creating quicksort parameterized by a pivot policy and a
// dispatch mode (sequential, goroutine fork-join, or futures on a worker
// pool), and an in-place quicksort that relocates elements by shifting.
//
// sortbench/parallel provides fork-join primitives and futures that are
// scheduled on a bounded worker pool.
//
// sortbench/sequential provides sequential counterparts of the fork-join
// primitives of sortbench/parallel.
//
// sortbench/speculative provides predicates that are evaluated in parallel
// and terminate early as soon as the result is known.
//
// sortbench/bench runs configurable benchmarks over random and ordered input,
// and sortbench/cmd/sortbench is its command line front end.
//
// The fork-join style of the parallel packages follows Cilk and Java's
// java.util.concurrent. See http://supertech.csail.mit.edu/papers/steal.pdf
// for some theoretical background.
package sortbench
