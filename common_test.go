package sortbench_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/sortbench"
)

func TestCompare(t *testing.T) {
	require.Equal(t, -1, sortbench.Compare(1, 2))
	require.Equal(t, 0, sortbench.Compare("a", "a"))
	require.Equal(t, 1, sortbench.Compare('g', 'c'))
	require.Equal(t, -1, sortbench.Compare(-0.5, 0.25))
}

func TestSorterFunc(t *testing.T) {
	var s sortbench.Sorter[int] = sortbench.SorterFunc[int](func(input []int) []int {
		return append([]int(nil), input...)
	})
	require.Equal(t, []int{2, 1}, s.Sort([]int{2, 1}))
}

func TestNewSourceReproducible(t *testing.T) {
	a, b := sortbench.NewSource(5), sortbench.NewSource(5)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	x, y := []int{0, 1, 2, 3, 4, 5}, []int{0, 1, 2, 3, 4, 5}
	a.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	b.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })
	require.Equal(t, x, y)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, x)
}

func TestSourceConcurrentUse(t *testing.T) {
	for _, src := range []sortbench.Source{sortbench.NewSource(1), sortbench.GlobalSource()} {
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 1000; i++ {
					n := src.Intn(10)
					if n < 0 || n >= 10 {
						t.Errorf("Intn(10) = %d", n)
					}
				}
			}()
		}
		wg.Wait()
	}
}
