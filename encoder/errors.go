// SPDX-License-Identifier: MIT
// Package: mksm/encoder
//
// errors.go - sentinel errors for the encoder package.
//
// Errors from the sparse package (ErrDegenerateRange, ErrRowTooLong, ...)
// pass through Encode wrapped with %w, so callers match them with errors.Is
// against the sparse sentinels directly.

package encoder

import "errors"

var (
	// ErrUnknownKind indicates an element kind other than "float" or "double".
	ErrUnknownKind = errors.New("encoder: unknown element kind")

	// ErrWrite indicates that the sink rejected or truncated a write. The
	// output is incomplete and must not be consumed.
	ErrWrite = errors.New("encoder: write failed")

	// ErrNilWriter indicates Encode was called without a sink.
	ErrNilWriter = errors.New("encoder: nil writer")
)
