// Package sampler provides the random source of the generator: an explicitly
// owned pseudo-random stream with uniform bounded integers and strictly
// positive rational magnitudes.
//
// There is no package-level generator. Every consumer receives a *Sampler,
// so a run can be replayed with WithSeed and independent streams never share
// state.
//
//	s := sampler.New(sampler.WithSeed(42))
//	n := s.Uint(10)                     // n ∈ [0,10)
//	v := sampler.RatioOf[float32](s)    // v > 0
package sampler
