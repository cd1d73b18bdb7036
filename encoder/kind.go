// SPDX-License-Identifier: MIT
// Package: mksm/encoder
//
// kind.go - element kind of matrix and vector values.

package encoder

import (
	"fmt"
	"strconv"
)

// Kind fixes the width of every sampled value for a run.
type Kind int

const (
	// Float32 writes single-precision values ("float").
	Float32 Kind = iota + 1
	// Float64 writes double-precision values ("double").
	Float64
)

// WordSize is the width of every integer field (counts, lengths, indices).
const WordSize = 8

// ParseKind maps the command-line spelling to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	}

	return 0, fmt.Errorf("ParseKind: %q: %w", name, ErrUnknownKind)
}

// Width returns the byte width of one value, or 0 for an invalid kind.
func (k Kind) Width() int {
	switch k {
	case Float32:
		return 4
	case Float64:
		return 8
	}

	return 0
}

// Valid reports whether k is Float32 or Float64.
func (k Kind) Valid() bool {
	return k.Width() != 0
}

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float"
	case Float64:
		return "double"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
