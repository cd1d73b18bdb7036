// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// row_lengths.go - one nonzero count per row.
//
// Contract:
//   - span = floor(Cols*2*Ratio) ≥ 1 (else ErrDegenerateRange).
//   - lengths[i] = s.Uint(span), drawn in row order; total = Σ lengths[i].
//   - A length > Cols is rejected (LengthStrict) or capped (LengthClamp)
//     before the caller writes anything.
//
// Complexity: O(Rows) time, Rows words of space.

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mksm/sampler"
)

const methodRowLengths = "RowLengths"

// maxBufferBytes is kept under the runtime allocation ceiling (1<<48 bytes
// on 64-bit hosts); larger makes panic instead of failing.
const maxBufferBytes = min(math.MaxInt, 1<<43)

// maxWords is the largest buffer, in words, we attempt to allocate.
const maxWords = maxBufferBytes / wordBytes

// RowLengths samples the row-length vector for shape and returns it together
// with the total nonzero count.
func RowLengths(s *sampler.Sampler, shape Shape, opts ...Option) ([]int64, int64, error) {
	cfg := newConfig(opts...)

	span, err := Span(shape)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", methodRowLengths, err)
	}
	if shape.Rows > maxWords {
		return nil, 0, fmt.Errorf("%s: rows=%d: %w", methodRowLengths, shape.Rows, ErrTooLarge)
	}

	lengths := make([]int64, shape.Rows)
	cols := int64(shape.Cols)
	var total int64
	for i := range lengths {
		n := int64(s.Uint(span))
		if n > cols {
			if cfg.lengthPolicy == LengthStrict {
				return nil, 0, fmt.Errorf("%s: row %d wants %d of %d columns: %w",
					methodRowLengths, i, n, cols, ErrRowTooLong)
			}
			n = cols
		}
		lengths[i] = n
		total += n
	}

	return lengths, total, nil
}
