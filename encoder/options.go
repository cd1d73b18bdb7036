// SPDX-License-Identifier: MIT
// Package: mksm/encoder
//
// options.go - functional options for Encode.
//
// Defaults:
//   - sampler = sampler.New()          (clock-seeded, seed reported in Stats)
//   - order   = binary.NativeEndian    (host-native layout)
//   - logger  = logrus logger writing to io.Discard
//   - sparse  = sparse package defaults (LengthStrict, StrategyRejection)

package encoder

import (
	"encoding/binary"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mksm/sampler"
	"github.com/katalvlaran/mksm/sparse"
)

// Option customizes one Encode call.
type Option func(*config)

type config struct {
	sampler *sampler.Sampler
	order   binary.ByteOrder
	logger  logrus.FieldLogger
	sparse  []sparse.Option
}

// WithSampler sets the random stream. Panics on nil.
func WithSampler(s *sampler.Sampler) Option {
	if s == nil {
		panic("encoder: WithSampler(nil)")
	}
	return func(c *config) {
		c.sampler = s
	}
}

// WithByteOrder overrides the host-native byte order. Panics on nil.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic("encoder: WithByteOrder(nil)")
	}
	return func(c *config) {
		c.order = order
	}
}

// WithLogger receives debug-level progress of each pipeline stage. Panics on nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("encoder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithStrategy selects how column indices are sampled.
func WithStrategy(s sparse.Strategy) Option {
	opt := sparse.WithStrategy(s)
	return func(c *config) {
		c.sparse = append(c.sparse, opt)
	}
}

// WithLengthPolicy selects how rows longer than cols are handled.
func WithLengthPolicy(p sparse.LengthPolicy) Option {
	opt := sparse.WithLengthPolicy(p)
	return func(c *config) {
		c.sparse = append(c.sparse, opt)
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampler == nil {
		cfg.sampler = sampler.New()
	}
	if cfg.order == nil {
		cfg.order = binary.NativeEndian
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}

	return cfg
}
