// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// values.go - streamed positive magnitudes.

package sparse

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/mksm/sampler"
)

const methodValues = "Values"

// Values samples count magnitudes of precision T and hands each one to emit
// as soon as it is drawn; nothing is buffered. It returns the running sum,
// accumulated in T like the values themselves. The first emit error stops
// the stream and is returned wrapped.
// Complexity: O(count) time, O(1) space.
func Values[T constraints.Float](s *sampler.Sampler, count int64, emit func(T) error) (float64, error) {
	if count < 0 {
		return 0, fmt.Errorf("%s: count=%d: %w", methodValues, count, ErrBadShape)
	}

	var sum T
	for i := int64(0); i < count; i++ {
		v := sampler.RatioOf[T](s)
		if err := emit(v); err != nil {
			return float64(sum), fmt.Errorf("%s: value %d of %d: %w", methodValues, i, count, err)
		}
		sum += v
	}

	return float64(sum), nil
}
