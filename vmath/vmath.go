package vmath

import (
	"math"
	"sync"
	"time"
)

// Rand is the random source used by every sampling helper
// Pass a seeded FastRand for deterministic output
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// lockedRand serializes access to a shared FastRand
type lockedRand struct {
	mu  sync.Mutex
	src *FastRand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

var (
	defaultRandOnce sync.Once
	defaultRand     *lockedRand
)

// DefaultRand returns the process-wide random source, seeded once from the wall clock
func DefaultRand() Rand {
	defaultRandOnce.Do(func() {
		defaultRand = &lockedRand{src: NewFastRand(uint64(time.Now().UnixNano()))}
	})
	return defaultRand
}

// SeedDefault reseeds the process-wide source; seed 0 keeps the clock seed
func SeedDefault(seed uint64) {
	if seed == 0 {
		return
	}
	r := DefaultRand().(*lockedRand)
	r.mu.Lock()
	r.src = NewFastRand(seed)
	r.mu.Unlock()
}

// Round rounds half to even so grid positions match banker's rounding
func Round(f float64) int {
	return int(math.RoundToEven(f))
}
