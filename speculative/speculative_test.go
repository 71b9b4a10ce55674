package speculative

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }

	require.True(t, And())
	require.True(t, And(yes))
	require.True(t, And(yes, yes, yes))
	require.False(t, And(no))
	require.False(t, And(yes, no))
	require.False(t, And(no, yes, yes, yes))
	require.False(t, And(yes, yes, yes, no))
}

func TestAndShortCircuit(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	result := And(
		func() bool { return false },
		func() bool { <-block; return true },
	)
	require.False(t, result)
}

func TestRangeAnd(t *testing.T) {
	s := make([]int, 1000)
	for i := range s {
		s[i] = i
	}
	ascending := func(low, high int) bool {
		for i := low; i < high; i++ {
			if i > 0 && s[i] < s[i-1] {
				return false
			}
		}
		return true
	}
	require.True(t, RangeAnd(0, len(s), 0, ascending))
	s[700] = -1
	require.False(t, RangeAnd(0, len(s), 0, ascending))
	require.False(t, RangeAnd(0, len(s), 1, ascending))
	require.Panics(t, func() { RangeAnd(5, 0, 1, ascending) })
}
