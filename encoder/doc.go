// Package encoder streams a synthetic sparse matrix and a dense vector into
// the flat binary layout read by the sparse matrix-vector benchmark.
//
// The layout has no header, version tag or checksum. Integer fields are
// 8-byte words; values are 4-byte floats or 8-byte doubles depending on
// Kind. Byte order is host-native unless WithByteOrder says otherwise. A
// reader recovers row boundaries from the row-length array alone, since the
// index stream carries no per-row delimiters.
//
// Encode owns the whole pass: it samples row lengths, validates them, and
// then writes row by row so memory stays proportional to rows+cols, never to
// the number of nonzeros.
//
//	st, err := encoder.Encode(f, encoder.Params{
//		Kind:  encoder.Float64,
//		Shape: sparse.Shape{Rows: 1000, Cols: 1000, Ratio: 0.01},
//	}, encoder.WithSampler(sampler.New(sampler.WithSeed(1))))
package encoder
