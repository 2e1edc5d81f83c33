// Package garden implements the procedural plant pipeline: a seeded PRNG,
// plant preset generation, L-system rewriting, turtle path building, and the
// scene that composes plants into a screen buffer.
package garden

import "math"

// Rand is a Mulberry32 pseudo-random number generator. A plant's entire
// shape derives from one 32-bit seed through this generator, so the output
// must stay bit-identical across platforms: all arithmetic is done on a
// uint32 state with wrapping multiplication.
type Rand struct {
	state uint32
}

// NewRand creates a generator seeded with the given 32-bit seed.
// Construction is the only way to (re)seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next advances the state and returns a float64 in [0, 1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// NextInt returns an integer in [min, max] inclusive.
func (r *Rand) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float64 in [min, max).
func (r *Rand) NextFloat(min, max float64) float64 {
	return min + r.Next()*(max-min)
}
