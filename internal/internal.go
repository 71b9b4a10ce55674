// Package internal holds helpers shared by the parallel, sequential,
// and speculative packages.
package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches returns into how many batches the range from low
// to high is divided for a requested batch count n. If n is 0, twice
// runtime.GOMAXPROCS(0) is requested. There are never more batches than
// elements, and an empty range is a single batch.
func ComputeNofBatches(low, high, n int) int {
	size := high - low
	if size < 0 {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if n < 0 {
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	if size == 0 {
		return 1
	}
	if n == 0 {
		n = 2 * runtime.GOMAXPROCS(0)
	}
	return min(n, size)
}

/*
A ForkedPanic is a panic value that was recovered in a forked
goroutine, together with the stack of that goroutine. The joining
goroutine panics with it, so the original stack is not lost.
*/
type ForkedPanic struct {
	Value any
	Stack []byte
}

func (p *ForkedPanic) Error() string {
	return fmt.Sprintf("%v\n%s\nrethrown at", p.Value, p.Stack)
}

// Unwrap returns Value if it is an error.
func (p *ForkedPanic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// forkedRuntimeError keeps a recovered runtime.Error a runtime.Error.
type forkedRuntimeError struct{ *ForkedPanic }

func (forkedRuntimeError) RuntimeError() {}

// WrapPanic turns a value returned by recover into a ForkedPanic. It
// returns nil for nil, and values that are already wrapped unchanged,
// so a panic deep in a recursion of forks carries only its own stack.
func WrapPanic(p any) any {
	switch p := p.(type) {
	case nil:
		return nil
	case *ForkedPanic, forkedRuntimeError:
		return p
	case runtime.Error:
		return forkedRuntimeError{&ForkedPanic{Value: p, Stack: debug.Stack()}}
	default:
		return &ForkedPanic{Value: p, Stack: debug.Stack()}
	}
}
