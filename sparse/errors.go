// SPDX-License-Identifier: MIT
// Package: mksm/sparse
//
// errors.go - sentinel errors for the sparse package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached at the return site: fmt.Errorf("Method: ...: %w", ErrX).
//   - Generators never panic on user input; option constructors may.

package sparse

import "errors"

var (
	// ErrBadShape indicates a non-positive row or column count, or a negative
	// per-row length.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrInvalidRatio indicates a density ratio that is NaN, ±Inf or <= 0.
	ErrInvalidRatio = errors.New("sparse: invalid density ratio")

	// ErrDegenerateRange indicates that floor(cols*2*ratio) is < 1 (nothing
	// to sample from) or does not fit in an int.
	ErrDegenerateRange = errors.New("sparse: degenerate sampling range")

	// ErrRowTooLong indicates a row asking for more distinct column indices
	// than there are columns.
	ErrRowTooLong = errors.New("sparse: row length exceeds column count")

	// ErrTooLarge indicates that a working buffer cannot be sized for the
	// requested shape.
	ErrTooLarge = errors.New("sparse: shape too large to allocate")

	// ErrUnknownStrategy indicates an unrecognized index-sampling strategy.
	ErrUnknownStrategy = errors.New("sparse: unknown sampling strategy")
)
