// SPDX-License-Identifier: MIT
// Package: mksm/sampler
//
// sampler.go - uniform integer and rational-magnitude sampling.
//
// Contract:
//   - Uint(n) returns a uniform integer in [0,n); n > 0 is a caller precondition.
//   - Ratio() draws a,b in [0,RatioDomain) and returns a/b, or RatioFallback
//     when either draw is 0. The result is always > 0.
//   - Every call advances the owned generator; a Sampler is NOT safe for
//     concurrent use. Parallel streams need one Sampler each.

package sampler

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

const (
	// RatioDomain bounds both operands of a ratio draw: a,b ∈ [0,RatioDomain).
	RatioDomain = 1000

	// RatioFallback replaces a/b whenever a or b is 0, so magnitudes never
	// collapse to zero or become undefined.
	RatioFallback = 0.1
)

// Sampler owns one pseudo-random stream.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Sampler configured by opts. Without WithSeed/WithRand the
// stream is seeded from the clock and is not reproducible unless Seed() is
// recorded and replayed.
// Complexity: O(len(opts)).
func New(opts ...Option) *Sampler {
	cfg := newConfig(opts...)

	return &Sampler{rng: cfg.rng, seed: cfg.seed}
}

// Seed reports the seed the stream was created from. It is 0 and meaningless
// when the Sampler was built WithRand.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Uint returns a uniformly chosen integer in [0,n).
// Panics if n <= 0 (same contract as rand.Intn); callers validate ranges up front.
func (s *Sampler) Uint(n int) int {
	return s.rng.Intn(n)
}

// Ratio returns a positive double-precision magnitude.
func (s *Sampler) Ratio() float64 {
	return RatioOf[float64](s)
}

// RatioOf returns a positive magnitude computed in the precision of T.
// The division happens in T so single-precision runs round exactly once.
func RatioOf[T constraints.Float](s *Sampler) T {
	a := s.Uint(RatioDomain)
	b := s.Uint(RatioDomain)
	if a == 0 || b == 0 {
		return T(RatioFallback)
	}

	return T(a) / T(b)
}
