package quiz

import (
	"math/rand/v2"
	"sync"
	"time"
)

type lockedSource struct {
	mu  sync.Mutex
	src *rand.PCG
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// NewRand returns a generator that is safe for concurrent use.
// A zero seed picks a time-based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(&lockedSource{src: rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)})
}

// SampleIndexes draws k distinct indexes from [0, n) in random order.
// k is clamped to [0, n].
func SampleIndexes(r *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
