package sortbench

import (
	"math/rand"
	"sync"
)

/*
A Source is a source of random numbers that is safe for concurrent
use. It is used by the random pivot policy and for shuffling the order
in which benchmarks run.
*/
type Source interface {
	// Intn returns a non-negative pseudo-random number in [0,n). It
	// panics if n <= 0.
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements, using swap to
	// exchange the elements with indexes i and j.
	Shuffle(n int, swap func(i, j int))
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a Source that produces a reproducible sequence of
// values for a given seed. Access is serialized with a mutex.
func NewSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}

type globalSource struct{}

// GlobalSource returns a Source backed by the top-level functions of
// math/rand. Its sequence is not reproducible across runs.
func GlobalSource() Source {
	return globalSource{}
}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
