package simulate

import (
	"math/rand"
	"sync"
	"time"
)

// Noise source of the random perturbations
type Noise interface {
	// Normal draw with mean 0
	Normal(sigma float64) float64
	// Uniform draw in [lo,hi)
	Uniform(lo, hi float64) float64
	// Exponential draw with the given mean
	Exponential(mean float64) float64
}

// RandNoise is safe for concurrent use
type RandNoise struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNoise seeded source; seed 0 seeds from the clock
func NewNoise(seed int64) *RandNoise {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandNoise{rnd: rand.New(rand.NewSource(seed))}
}

func (n *RandNoise) Normal(sigma float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rnd.NormFloat64() * sigma
}

func (n *RandNoise) Uniform(lo, hi float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return lo + n.rnd.Float64()*(hi-lo)
}

func (n *RandNoise) Exponential(mean float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rnd.ExpFloat64() * mean
}

// NoNoise every draw is zero
type NoNoise struct{}

func (NoNoise) Normal(float64) float64           { return 0 }
func (NoNoise) Uniform(float64, float64) float64 { return 0 }
func (NoNoise) Exponential(float64) float64      { return 0 }
