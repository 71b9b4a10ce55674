package internal

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeNofBatches(t *testing.T) {
	require.Equal(t, 1, ComputeNofBatches(5, 5, 0))
	require.Equal(t, 1, ComputeNofBatches(5, 5, 7))
	require.Equal(t, 4, ComputeNofBatches(0, 100, 4))
	require.Equal(t, 3, ComputeNofBatches(0, 3, 8))
	require.Equal(t, min(2*runtime.GOMAXPROCS(0), 1000), ComputeNofBatches(0, 1000, 0))
	require.Panics(t, func() { ComputeNofBatches(0, 10, -1) })
	require.Panics(t, func() { ComputeNofBatches(5, 5, -1) })
	require.Panics(t, func() { ComputeNofBatches(10, 0, 1) })
}

func TestWrapPanic(t *testing.T) {
	require.Nil(t, WrapPanic(nil))

	p, ok := WrapPanic("boom").(*ForkedPanic)
	require.True(t, ok)
	require.Equal(t, "boom", p.Value)
	require.NotEmpty(t, p.Stack)
	require.True(t, strings.HasPrefix(p.Error(), "boom\n"))
	require.Contains(t, p.Error(), "rethrown at")
	require.Nil(t, p.Unwrap())

	bad := errors.New("bad")
	err, ok := WrapPanic(bad).(error)
	require.True(t, ok)
	require.ErrorIs(t, err, bad)
	_, isRuntime := err.(runtime.Error)
	require.False(t, isRuntime)
}

func TestWrapPanicRuntimeError(t *testing.T) {
	var rerr runtime.Error
	func() {
		defer func() { rerr = recover().(runtime.Error) }()
		var a []int
		_ = a[len(a)]
	}()
	wrapped := WrapPanic(rerr)
	_, isRuntime := wrapped.(runtime.Error)
	require.True(t, isRuntime)
	require.ErrorIs(t, wrapped.(error), rerr)
}

func TestWrapPanicOnce(t *testing.T) {
	inner := WrapPanic("deep")
	require.Same(t, inner, WrapPanic(inner))

	var rerr runtime.Error
	func() {
		defer func() { rerr = recover().(runtime.Error) }()
		var m map[string]int
		m["x"] = 1
	}()
	wrapped := WrapPanic(rerr)
	require.Equal(t, wrapped, WrapPanic(wrapped))
}
