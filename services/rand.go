package services

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand wraps math/rand behind a mutex so a single source can serve
// concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand creates a RandSource seeded with the given seed.
func NewLockedRand(seed int64) RandSource {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

// NewDefaultRand creates a time-seeded RandSource.
func NewDefaultRand() RandSource {
	return NewLockedRand(time.Now().UnixNano())
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
