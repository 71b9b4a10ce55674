package parallel

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/exascience/sortbench/internal"
)

/*
A Pool is a bounded set of worker goroutines that Futures are
scheduled on.

A Pool never blocks a submitter: when all workers are busy, Spawn runs
the function in the calling goroutine instead. Tasks that wait for
Futures they spawned themselves therefore cannot deadlock the pool.
*/
type Pool struct {
	pool *ants.Pool
}

// DefaultPoolSize returns the number of workers used by NewPool when
// it receives a size <= 0.
func DefaultPoolSize() int {
	return 4 * runtime.GOMAXPROCS(0)
}

// NewPool returns a Pool with size workers. If size <= 0,
// DefaultPoolSize() is used instead.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		size = DefaultPoolSize()
	}
	pool, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// Cap returns the number of workers of the pool.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// Running returns the number of workers currently executing a task.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Close releases the workers of the pool. Futures spawned afterwards
// run in the calling goroutine. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.pool.Release()
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// DefaultPool returns a process-wide Pool of DefaultPoolSize() workers
// that is created on first use and never closed.
func DefaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		pool, err := NewPool(0)
		if err != nil {
			panic(err)
		}
		defaultPool = pool
	})
	return defaultPool
}

/*
A Future holds the result of a function that was scheduled with
Spawn.
*/
type Future[T any] struct {
	wg     sync.WaitGroup
	result T
	p      any
}

/*
Spawn schedules f on a worker of pool and returns a Future for its
result. If pool is nil, DefaultPool() is used. If no worker is
available, f is invoked in the calling goroutine before Spawn returns.
*/
func Spawn[T any](pool *Pool, f func() T) *Future[T] {
	if pool == nil {
		pool = DefaultPool()
	}
	future := &Future[T]{}
	future.wg.Add(1)
	task := func() {
		defer func() {
			future.p = internal.WrapPanic(recover())
			future.wg.Done()
		}()
		future.result = f()
	}
	if err := pool.pool.Submit(task); err != nil {
		task()
	}
	return future
}

// Get blocks until the function of the future has terminated, and
// returns its result. If the function panicked, Get panics with the
// recovered panic value.
func (f *Future[T]) Get() T {
	f.wg.Wait()
	if f.p != nil {
		panic(f.p)
	}
	return f.result
}
