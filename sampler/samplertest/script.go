// Package samplertest provides scripted random sources so tests can force
// exact draw sequences through a sampler.Sampler.
package samplertest

import (
	"fmt"
	"math/rand"
)

// Source replays a fixed list of draws. Each entry v is encoded so that the
// next rand.Rand.Intn(n) call returns v, provided 0 ≤ v < n ≤ 1<<31-1.
type Source struct {
	draws []int
	pos   int
}

// NewSource returns a Source replaying draws in order.
func NewSource(draws ...int) *Source {
	return &Source{draws: append([]int(nil), draws...)}
}

// Int63 implements rand.Source. Intn takes the high 31 bits of Int63 and,
// for v < n, reduces them to v unchanged.
func (s *Source) Int63() int64 {
	if s.pos >= len(s.draws) {
		panic(fmt.Sprintf("samplertest: script exhausted after %d draws", len(s.draws)))
	}
	v := s.draws[s.pos]
	s.pos++

	return int64(v) << 32
}

// Seed implements rand.Source; scripts ignore reseeding.
func (s *Source) Seed(int64) {}

// Remaining reports how many scripted draws were not consumed.
func (s *Source) Remaining() int {
	return len(s.draws) - s.pos
}

// Rand wraps draws into a *rand.Rand ready for sampler.WithRand.
func Rand(draws ...int) *rand.Rand {
	return rand.New(NewSource(draws...))
}
