// SPDX-License-Identifier: MIT
// Package: mksm/encoder
//
// encoder.go - drives generation and streams the fixed record order:
//
//	1. rows                      word
//	2. row lengths               rows words
//	3. total nonzeros            word
//	4. column indices            total words, row by row, each row ascending
//	5. total nonzeros            word (repeated, positional)
//	6. matrix values             total values of Kind width
//	7. cols                      word
//	8. vector values             cols values of Kind width
//
// Row lengths are sampled and checked before the first byte is written, so
// configuration errors never leave a partial stream. Sink failures after
// that point abort immediately; the partial output is unusable.

package encoder

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mksm/sampler"
	"github.com/katalvlaran/mksm/sparse"
)

const methodEncode = "Encode"

// Params are the validated inputs of one generation pass.
type Params struct {
	Kind  Kind
	Shape sparse.Shape
}

// Validate checks the kind and the shape, including the sampling range.
func (p Params) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("kind=%s: %w", p.Kind, ErrUnknownKind)
	}
	if _, err := sparse.Span(p.Shape); err != nil {
		return err
	}

	return nil
}

// Stats summarizes a completed pass.
type Stats struct {
	Rows      int64
	Cols      int64
	Nonzeros  int64
	Kind      Kind
	ElemSize  int
	MatrixSum float64 // sum of matrix values, informational only
	VectorSum float64 // sum of vector values, informational only
	Bytes     int64
	Seed      int64
}

// Encode generates a random sparse matrix and dense vector for p and streams
// them to w. Errors wrap ErrNilWriter, ErrUnknownKind, ErrWrite or a sparse
// sentinel.
// Complexity: O(rows + Σ row cost + cols) time; O(rows + cols) words of memory.
func Encode(w io.Writer, p Params, opts ...Option) (Stats, error) {
	if w == nil {
		return Stats{}, fmt.Errorf("%s: %w", methodEncode, ErrNilWriter)
	}
	if err := p.Validate(); err != nil {
		return Stats{}, fmt.Errorf("%s: %w", methodEncode, err)
	}
	cfg := newConfig(opts...)
	s := cfg.sampler
	log := cfg.logger.WithFields(logrus.Fields{
		"rows":  p.Shape.Rows,
		"cols":  p.Shape.Cols,
		"ratio": p.Shape.Ratio,
		"kind":  p.Kind.String(),
	})

	lengths, total, err := sparse.RowLengths(s, p.Shape, cfg.sparse...)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", methodEncode, err)
	}
	set, err := sparse.NewIndexSet(p.Shape.Cols, cfg.sparse...)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", methodEncode, err)
	}
	log.WithField("nonzeros", total).Debug("row lengths sampled")

	st := Stats{
		Rows:     int64(p.Shape.Rows),
		Cols:     int64(p.Shape.Cols),
		Nonzeros: total,
		Kind:     p.Kind,
		ElemSize: p.Kind.Width(),
		Seed:     s.Seed(),
	}
	out := NewWriter(w, cfg.order)
	fail := func(err error) (Stats, error) {
		st.Bytes = out.Written()
		return st, fmt.Errorf("%s: %w", methodEncode, err)
	}

	if err = out.Word("rows", st.Rows); err != nil {
		return fail(err)
	}
	if err = out.Words("row lengths", lengths); err != nil {
		return fail(err)
	}
	if err = out.Word("nonzeros", total); err != nil {
		return fail(err)
	}
	for i, n := range lengths {
		row, err := set.Draw(s, int(n))
		if err != nil {
			return fail(fmt.Errorf("row %d: %w", i, err))
		}
		if err = out.Words("column indices", row); err != nil {
			return fail(err)
		}
	}
	log.Debug("column indices written")

	if err = out.Word("nonzeros", total); err != nil {
		return fail(err)
	}
	if st.MatrixSum, err = writeValues(out, s, p.Kind, total, "matrix values"); err != nil {
		return fail(err)
	}
	if err = out.Word("cols", st.Cols); err != nil {
		return fail(err)
	}
	if st.VectorSum, err = writeValues(out, s, p.Kind, st.Cols, "vector values"); err != nil {
		return fail(err)
	}

	st.Bytes = out.Written()
	log.WithField("bytes", st.Bytes).Debug("values written")

	return st, nil
}

// writeValues streams count values in the width of kind. Both kinds write the
// same count; only the precision differs.
func writeValues(out *Writer, s *sampler.Sampler, kind Kind, count int64, field string) (float64, error) {
	if kind == Float32 {
		return sparse.Values(s, count, func(v float32) error { return out.Float32(field, v) })
	}

	return sparse.Values(s, count, func(v float64) error { return out.Float64(field, v) })
}

// Size returns the exact byte length of a stream with the given dimensions
// and realized nonzero count.
func Size(rows, cols, nonzeros int64, kind Kind) int64 {
	words := 4 + rows + nonzeros
	values := nonzeros + cols

	return words*WordSize + values*int64(kind.Width())
}
