package encoder_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mksm/encoder"
)

// decoded is the stream as a benchmark reader would see it.
type decoded struct {
	Rows      int64
	Lengths   []int64
	Nonzeros  int64
	Indices   [][]int64
	Nonzeros2 int64
	Values    []float64
	Cols      int64
	Vector    []float64
}

// decode reads data back following the record order and fails the test on
// any missing or leftover byte.
func decode(t *testing.T, data []byte, kind encoder.Kind, order binary.ByteOrder) decoded {
	t.Helper()
	r := bytes.NewReader(data)
	var d decoded

	word := func() int64 {
		var v int64
		require.NoError(t, binary.Read(r, order, &v))
		return v
	}
	floats := func(n int64) []float64 {
		out := make([]float64, n)
		if kind == encoder.Float32 {
			tmp := make([]float32, n)
			require.NoError(t, binary.Read(r, order, tmp))
			for i, v := range tmp {
				out[i] = float64(v)
			}
			return out
		}
		require.NoError(t, binary.Read(r, order, out))
		return out
	}

	d.Rows = word()
	d.Lengths = make([]int64, d.Rows)
	require.NoError(t, binary.Read(r, order, d.Lengths))
	d.Nonzeros = word()
	d.Indices = make([][]int64, d.Rows)
	for i, n := range d.Lengths {
		d.Indices[i] = make([]int64, n)
		require.NoError(t, binary.Read(r, order, d.Indices[i]))
	}
	d.Nonzeros2 = word()
	d.Values = floats(d.Nonzeros2)
	d.Cols = word()
	d.Vector = floats(d.Cols)

	require.Zero(t, r.Len(), "leftover bytes after vector")

	return d
}

// limitWriter accepts up to limit bytes and then fails with err.
type limitWriter struct {
	limit int
	n     int
	err   error
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.n
	if room >= len(p) {
		w.n += len(p)
		return len(p), nil
	}
	if room < 0 {
		room = 0
	}
	w.n += room
	return room, w.err
}

// shortWriter silently drops the last byte of every write.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

var errDiskFull = errors.New("disk full")

var _ io.Writer = (*limitWriter)(nil)
