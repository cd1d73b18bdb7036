// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// options.go - functional options for the row and index generators.
//
// Defaults:
//   - lengthPolicy = LengthStrict       (a row longer than cols is an error)
//   - strategy     = StrategyRejection  (draw, rescan, redraw on collision)

package sparse

import (
	"fmt"
	"strings"
)

// LengthPolicy decides what happens to a sampled row length greater than cols.
type LengthPolicy int

const (
	// LengthStrict rejects the configuration with ErrRowTooLong.
	LengthStrict LengthPolicy = iota
	// LengthClamp caps the row length at cols.
	LengthClamp
)

// Strategy selects how IndexSet draws distinct column indices.
type Strategy int

const (
	// StrategyRejection draws a candidate, scans the accepted prefix and
	// redraws on collision. O(n²) per row.
	StrategyRejection Strategy = iota
	// StrategyShuffle takes the prefix of a partial Fisher-Yates shuffle
	// over a persistent permutation of [0,cols). O(n) per row.
	StrategyShuffle
	// StrategyAuto uses shuffle for rows denser than half the columns and
	// rejection otherwise.
	StrategyAuto
)

var strategyNames = map[Strategy]string{
	StrategyRejection: "rejection",
	StrategyShuffle:   "shuffle",
	StrategyAuto:      "auto",
}

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "rejection", "shuffle" or "auto" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
}

// Option customizes row-length and index generation.
type Option func(*config)

type config struct {
	lengthPolicy LengthPolicy
	strategy     Strategy
}

// WithLengthPolicy sets how over-long rows are handled.
// Panics on an unknown policy.
func WithLengthPolicy(p LengthPolicy) Option {
	if p != LengthStrict && p != LengthClamp {
		panic(fmt.Sprintf("sparse: WithLengthPolicy(%d)", int(p)))
	}
	return func(c *config) {
		c.lengthPolicy = p
	}
}

// WithStrategy sets the index-sampling strategy. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if _, ok := strategyNames[s]; !ok {
		panic(fmt.Sprintf("sparse: WithStrategy(%d)", int(s)))
	}
	return func(c *config) {
		c.strategy = s
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		lengthPolicy: LengthStrict,
		strategy:     StrategyRejection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
