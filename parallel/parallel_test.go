package parallel_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exascience/sortbench/internal"
	"github.com/exascience/sortbench/parallel"
)

func ExampleDo() {
	var fib func(int) int

	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}

	var parallelFib func(int) int

	parallelFib = func(n int) int {
		if n < 20 {
			return fib(n)
		}
		var n1, n2 int
		parallel.Do(
			func() { n1 = parallelFib(n - 1) },
			func() { n2 = parallelFib(n - 2) },
		)
		return n1 + n2
	}

	fmt.Println(parallelFib(25))

	// Output:
	// 75025
}

func ExampleSpawn() {
	pool, err := parallel.NewPool(2)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	square := func(n int) *parallel.Future[int] {
		return parallel.Spawn(pool, func() int { return n * n })
	}
	a, b := square(3), square(4)
	fmt.Println(a.Get() + b.Get())

	// Output:
	// 25
}

func TestDo(t *testing.T) {
	var count int32
	thunk := func() { atomic.AddInt32(&count, 1) }

	parallel.Do()
	parallel.Do(thunk)
	parallel.Do(thunk, thunk)
	parallel.Do(thunk, thunk, thunk, thunk, thunk)
	require.Equal(t, int32(8), atomic.LoadInt32(&count))
}

func TestDoPanic(t *testing.T) {
	require.Panics(t, func() {
		parallel.Do(
			func() {},
			func() { panic("right") },
		)
	})
	require.Panics(t, func() {
		parallel.Do(
			func() {},
			func() {},
			func() { panic("deep") },
		)
	})
}

func recoverForked(f func()) (p *internal.ForkedPanic) {
	defer func() { p, _ = recover().(*internal.ForkedPanic) }()
	f()
	return nil
}

func TestNestedPanicWrappedOnce(t *testing.T) {
	var fork func(depth int)
	fork = func(depth int) {
		if depth == 0 {
			panic("deep")
		}
		parallel.Do(func() {}, func() { fork(depth - 1) })
	}
	p := recoverForked(func() { fork(4) })
	require.NotNil(t, p)
	require.Equal(t, "deep", p.Value)

	future := parallel.Spawn(nil, func() int {
		return parallel.Spawn(nil, func() int { panic("nested") }).Get()
	})
	p = recoverForked(func() { future.Get() })
	require.NotNil(t, p)
	require.Equal(t, "nested", p.Value)
}

func TestRange(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16} {
		s := make([]int, 1000)
		parallel.Range(0, len(s), n, func(low, high int) {
			for i := low; i < high; i++ {
				s[i] += i
			}
		})
		for i, v := range s {
			require.Equal(t, i, v, "batches %d", n)
		}
	}
	require.Panics(t, func() { parallel.Range(0, 10, -1, func(int, int) {}) })
}

func TestSpawnSaturatedPool(t *testing.T) {
	pool, err := parallel.NewPool(1)
	require.NoError(t, err)
	defer pool.Close()
	require.Equal(t, 1, pool.Cap())

	release := make(chan struct{})
	started := make(chan struct{})
	blocker := parallel.Spawn(pool, func() int {
		close(started)
		<-release
		return 1
	})
	<-started

	// The only worker is busy, so this runs in the calling goroutine.
	inline := parallel.Spawn(pool, func() int { return 2 })
	require.Equal(t, 2, inline.Get())

	close(release)
	require.Equal(t, 1, blocker.Get())
}

func TestSpawnRecursive(t *testing.T) {
	pool, err := parallel.NewPool(2)
	require.NoError(t, err)
	defer pool.Close()

	var sum func(low, high int) int
	sum = func(low, high int) int {
		if high-low < 4 {
			s := 0
			for i := low; i < high; i++ {
				s += i
			}
			return s
		}
		mid := (low + high) / 2
		left := parallel.Spawn(pool, func() int { return sum(low, mid) })
		right := parallel.Spawn(pool, func() int { return sum(mid, high) })
		return left.Get() + right.Get()
	}
	require.Equal(t, 4950, sum(0, 100))
}

func TestSpawnPanic(t *testing.T) {
	future := parallel.Spawn(nil, func() int { panic("future") })
	require.Panics(t, func() { future.Get() })
}

func TestSpawnClosedPool(t *testing.T) {
	pool, err := parallel.NewPool(1)
	require.NoError(t, err)
	pool.Close()
	pool.Close()
	require.Equal(t, "ok", parallel.Spawn(pool, func() string { return "ok" }).Get())
}
