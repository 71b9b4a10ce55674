package sequential

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoOrder(t *testing.T) {
	var order []int
	Do(
		func() { order = append(order, 0) },
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestRangeCoversInterval(t *testing.T) {
	var batches [][2]int
	Range(3, 20, 4, func(low, high int) {
		batches = append(batches, [2]int{low, high})
	})
	require.Equal(t, 3, batches[0][0])
	require.Equal(t, 20, batches[len(batches)-1][1])
	for i := 1; i < len(batches); i++ {
		require.Equal(t, batches[i-1][1], batches[i][0])
	}
	require.LessOrEqual(t, len(batches), 4)
}
