// SPDX-License-Identifier: MIT
// Package: mksm/sampler
//
// options.go - functional options for Sampler construction.
//
// Contract:
//   - Options are functional (type Option func(*config)); last one wins.
//   - Option constructors panic on meaningless input (nil RNG).
//   - Default: a clock-seeded *rand.Rand whose seed is retained.

package sampler

import (
	"math/rand"
	"time"
)

// Option customizes a Sampler before it is returned by New.
type Option func(*config)

type config struct {
	rng  *rand.Rand
	seed int64
}

// WithSeed makes the stream reproducible: equal seeds yield equal draws.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches a caller-owned generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.seed = 0
		c.rng = r
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.seed = time.Now().UnixNano()
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}
