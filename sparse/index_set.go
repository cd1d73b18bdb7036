// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// index_set.go - per-row distinct column indices.
//
// IndexSet is the bounded working set shared by all rows of one pass. Draw
// logically clears it, fills the first n slots with distinct indices in
// [0,cols) and returns them sorted ascending. The returned slice aliases the
// working set and is only valid until the next Draw.
//
// Strategies:
//   - Rejection: candidate ← Uint(cols); linear scan of accepted prefix;
//     redraw on collision. Terminates for any n ≤ cols, slows sharply as n→cols.
//   - Shuffle: swap perm[j] with perm[j+Uint(cols-j)] for j < n and take
//     perm[:n]. perm stays a permutation across rows, so no reset is needed.
//   - Auto: shuffle when 2n > cols, else rejection.

package sparse

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/mksm/sampler"
)

const (
	methodNewIndexSet = "NewIndexSet"
	methodDraw        = "Draw"
)

// IndexSet draws sorted distinct column indices, one row at a time.
type IndexSet struct {
	cols     int
	strategy Strategy
	buf      []int64
	perm     []int64 // lazily built identity permutation for shuffle draws
}

// NewIndexSet allocates the working set for a matrix with cols columns.
func NewIndexSet(cols int, opts ...Option) (*IndexSet, error) {
	cfg := newConfig(opts...)
	if cols <= 0 {
		return nil, fmt.Errorf("%s: cols=%d: %w", methodNewIndexSet, cols, ErrBadShape)
	}
	if cols > maxWords {
		return nil, fmt.Errorf("%s: cols=%d: %w", methodNewIndexSet, cols, ErrTooLarge)
	}

	return &IndexSet{
		cols:     cols,
		strategy: cfg.strategy,
		buf:      make([]int64, cols),
	}, nil
}

// Cols reports the column bound of the set.
func (x *IndexSet) Cols() int {
	return x.cols
}

// Draw returns n distinct indices in [0,cols), strictly ascending.
func (x *IndexSet) Draw(s *sampler.Sampler, n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDraw, n, ErrBadShape)
	}
	if n > x.cols {
		return nil, fmt.Errorf("%s: n=%d cols=%d: %w", methodDraw, n, x.cols, ErrRowTooLong)
	}

	row := x.buf[:n]
	switch x.strategy {
	case StrategyShuffle:
		x.shuffle(s, row)
	case StrategyAuto:
		if 2*n > x.cols {
			x.shuffle(s, row)
		} else {
			x.reject(s, row)
		}
	default:
		x.reject(s, row)
	}
	slices.Sort(row)

	return row, nil
}

func (x *IndexSet) reject(s *sampler.Sampler, row []int64) {
	var c int64
	for j := range row {
		for {
			c = int64(s.Uint(x.cols))
			if !contains(row[:j], c) {
				break
			}
		}
		row[j] = c
	}
}

func (x *IndexSet) shuffle(s *sampler.Sampler, row []int64) {
	if x.perm == nil {
		x.perm = make([]int64, x.cols)
		for i := range x.perm {
			x.perm[i] = int64(i)
		}
	}
	for j := range row {
		k := j + s.Uint(x.cols-j)
		x.perm[j], x.perm[k] = x.perm[k], x.perm[j]
		row[j] = x.perm[j]
	}
}

// contains reports whether c occurs in accepted.
func contains(accepted []int64, c int64) bool {
	for _, v := range accepted {
		if v == c {
			return true
		}
	}

	return false
}
