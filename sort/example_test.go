package sort_test

import (
	"fmt"

	"github.com/exascience/sortbench"
	"github.com/exascience/sortbench/sort"
)

func Example() {
	words := []string{"bb", "cd", "aa", "cc", "ab"}

	sorters := []sortbench.Sorter[string]{
		sort.Baseline[string]{},
		sort.QuickFirst[string](),
		sort.QuickThreads[string](),
		sort.InPlace[string]{},
	}
	for _, s := range sorters {
		fmt.Println(s.Sort(words))
	}
	fmt.Println(words)

	// Output:
	// [aa ab bb cc cd]
	// [aa ab bb cc cd]
	// [aa ab bb cc cd]
	// [aa ab bb cc cd]
	// [bb cd aa cc ab]
}

func ExampleMedianOfThree() {
	pivot := sort.MedianOfThree[int]()
	fmt.Println(pivot([]int{5, 3, 8}))
	fmt.Println(pivot([]int{1, 9, 9, 9, 4}))

	// Output:
	// 0
	// 4
}
