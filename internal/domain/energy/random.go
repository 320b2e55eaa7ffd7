package energy

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the noise source used by the generators. Implementations must return values in
// [0, 1) and be safe for concurrent use when shared across requests.
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a goroutine-safe PCG source. A zero seed is replaced by the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
