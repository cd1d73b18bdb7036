// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// shape.go - matrix descriptor and the density-derived sampling range.

package sparse

import (
	"fmt"
	"math"
)

const (
	methodSpan = "Span"

	// spanFactor scales cols*ratio into the exclusive upper bound of a row length.
	spanFactor = 2.0

	// wordBytes is the in-memory size of one row length or column index.
	wordBytes = 8
)

// Shape describes the synthetic matrix: Rows×Cols with density control Ratio.
type Shape struct {
	Rows  int
	Cols  int
	Ratio float64
}

// Validate checks dimensions and ratio. It does not check the derived range;
// use Span for that.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("rows=%d cols=%d: %w", s.Rows, s.Cols, ErrBadShape)
	}
	if math.IsNaN(s.Ratio) || math.IsInf(s.Ratio, 0) || s.Ratio <= 0 {
		return fmt.Errorf("ratio=%g: %w", s.Ratio, ErrInvalidRatio)
	}

	return nil
}

// Span returns floor(Cols*2*Ratio), the exclusive upper bound of every row
// length. A span below 1 would leave nothing to sample and is rejected.
func Span(s Shape) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSpan, err)
	}

	span := math.Floor(float64(s.Cols) * spanFactor * s.Ratio)
	if span < 1 {
		return 0, fmt.Errorf("%s: cols=%d ratio=%g gives span %g: %w",
			methodSpan, s.Cols, s.Ratio, span, ErrDegenerateRange)
	}
	if span >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%s: span %g overflows: %w", methodSpan, span, ErrDegenerateRange)
	}

	return int(span), nil
}
