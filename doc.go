// Package mksm generates synthetic inputs for sparse matrix-vector
// multiplication benchmarks: a random sparse matrix in row-compressed form
// plus a dense vector, streamed straight to a flat binary file.
//
// The module is organized as:
//
//	sampler/      explicitly owned pseudo-random stream (uniform ints, positive ratios)
//	sparse/       row lengths, per-row sorted distinct column indices, value streams
//	encoder/      fixed record layout, element kinds, byte-order aware word writer
//	cmd/mksm/     command-line front end: mksm <float|double> <cols> <rows> <ratio> <out>
//
// Output layout (all integers are 8-byte words):
//
//	rows | lengths[rows] | nnz | indices[nnz] | nnz | values[nnz] | cols | vector[cols]
//
// Nothing is materialized beyond one row of indices and the row-length
// array, so memory stays flat in the number of nonzeros. Every generator
// takes a *sampler.Sampler; pass sampler.WithSeed to make a run repeatable.
package mksm
