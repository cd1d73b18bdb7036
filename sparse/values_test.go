package sparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mksm/sampler"
	"github.com/katalvlaran/mksm/sampler/samplertest"
	"github.com/katalvlaran/mksm/sparse"
)

func TestValues_Float64(t *testing.T) {
	t.Parallel()

	s := sampler.New(sampler.WithRand(samplertest.Rand(1, 2, 0, 9, 3, 4)))
	var got []float64
	sum, err := sparse.Values(s, 3, func(v float64) error {
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.1, 0.75}, got)
	require.InDelta(t, 1.35, sum, 1e-12)
}

func TestValues_Float32(t *testing.T) {
	t.Parallel()

	s := sampler.New(sampler.WithSeed(8))
	n := 0
	var want float32
	sum, err := sparse.Values(s, 1000, func(v float32) error {
		require.Greater(t, v, float32(0))
		want += v
		n++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1000, n)
	require.Equal(t, float64(want), sum)
}

func TestValues_Zero(t *testing.T) {
	t.Parallel()

	sum, err := sparse.Values(sampler.New(sampler.WithRand(samplertest.Rand())), 0,
		func(float64) error { t.Fatal("emit called"); return nil })
	require.NoError(t, err)
	require.Zero(t, sum)

	_, err = sparse.Values(sampler.New(), -1, func(float64) error { return nil })
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestValues_EmitErrorStops(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	calls := 0
	_, err := sparse.Values(sampler.New(sampler.WithSeed(1)), 10, func(float64) error {
		calls++
		if calls == 4 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 4, calls)
}
