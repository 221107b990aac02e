package script

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking. It is the
// sole randomness source available to scripts; seeding two runs identically
// reproduces the exact draw sequence, which is what makes replays work.
// Child contexts share the parent's RNG instance so parent and child draws
// interleave into a single deterministic sequence.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	r.pos++
	return r.src.Float64()
}

// Range returns a random float64 in [a, b).
func (r *RNG) Range(a, b float64) float64 {
	return a + r.Float()*(b-a)
}

// Intn returns a random int in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
