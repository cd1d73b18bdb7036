// SPDX-License-Identifier: MIT
// Package: mksm/encoder
//
// writer.go - fixed-width record writer.
//
// Every call is one raw transfer of fixed-width fields in the configured byte
// order: no framing, no padding, no checksum. A failed or short write is
// returned immediately wrapped with ErrWrite and the field being written.

package encoder

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// chunkWords bounds the scratch buffer used by Words.
const chunkWords = 4096

// Writer encodes words and floats onto an io.Writer and counts bytes written.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	buf   []byte
	n     int64
}

// NewWriter wraps w. A nil order means binary.NativeEndian.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	if order == nil {
		order = binary.NativeEndian
	}

	return &Writer{w: w, order: order, buf: make([]byte, WordSize)}
}

// Written reports the number of bytes accepted by the sink so far.
func (w *Writer) Written() int64 {
	return w.n
}

// Word writes one signed word.
func (w *Writer) Word(field string, v int64) error {
	w.order.PutUint64(w.buf[:WordSize], uint64(v))
	return w.write(field, w.buf[:WordSize])
}

// Words writes vs back to back, in chunks of at most chunkWords words.
func (w *Writer) Words(field string, vs []int64) error {
	for len(vs) > 0 {
		n := min(len(vs), chunkWords)
		if cap(w.buf) < n*WordSize {
			w.buf = make([]byte, chunkWords*WordSize)
		}
		p := w.buf[:n*WordSize]
		for i, v := range vs[:n] {
			w.order.PutUint64(p[i*WordSize:], uint64(v))
		}
		if err := w.write(field, p); err != nil {
			return err
		}
		vs = vs[n:]
	}

	return nil
}

// Float32 writes one single-precision value.
func (w *Writer) Float32(field string, v float32) error {
	w.order.PutUint32(w.buf[:4], math.Float32bits(v))
	return w.write(field, w.buf[:4])
}

// Float64 writes one double-precision value.
func (w *Writer) Float64(field string, v float64) error {
	w.order.PutUint64(w.buf[:8], math.Float64bits(v))
	return w.write(field, w.buf[:8])
}

func (w *Writer) write(field string, p []byte) error {
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %s (%d bytes in): %w", ErrWrite, field, w.n, err)
	}

	return nil
}
