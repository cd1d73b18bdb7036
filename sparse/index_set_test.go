package sparse_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mksm/sampler"
	"github.com/katalvlaran/mksm/sampler/samplertest"
	"github.com/katalvlaran/mksm/sparse"
)

// requireRow checks the per-row invariants: exact length, strictly
// ascending (hence distinct) and inside [0,cols).
func requireRow(t *testing.T, row []int64, n, cols int) {
	t.Helper()
	require.Len(t, row, n)
	for j, c := range row {
		require.GreaterOrEqual(t, c, int64(0))
		require.Less(t, c, int64(cols))
		if j > 0 {
			require.Less(t, row[j-1], c, "row not strictly ascending: %v", row)
		}
	}
}

func TestNewIndexSet_BadShape(t *testing.T) {
	t.Parallel()

	_, err := sparse.NewIndexSet(0)
	require.ErrorIs(t, err, sparse.ErrBadShape)
	_, err = sparse.NewIndexSet(-5)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestNewIndexSet_TooLarge(t *testing.T) {
	t.Parallel()

	for _, cols := range oversizedCounts() {
		_, err := sparse.NewIndexSet(cols)
		require.ErrorIs(t, err, sparse.ErrTooLarge, "cols=%d", cols)
	}
}

func TestDraw_Invariants(t *testing.T) {
	t.Parallel()

	strategies := []sparse.Strategy{sparse.StrategyRejection, sparse.StrategyShuffle, sparse.StrategyAuto}
	for _, st := range strategies {
		st := st
		t.Run(st.String(), func(t *testing.T) {
			t.Parallel()

			const cols = 37
			set, err := sparse.NewIndexSet(cols, sparse.WithStrategy(st))
			require.NoError(t, err)
			require.Equal(t, cols, set.Cols())

			s := sampler.New(sampler.WithSeed(2024))
			for n := 0; n <= cols; n++ {
				row, err := set.Draw(s, n)
				require.NoError(t, err)
				requireRow(t, row, n, cols)
			}
		})
	}
}

func TestDraw_FullRowIsIdentity(t *testing.T) {
	t.Parallel()

	for _, st := range []sparse.Strategy{sparse.StrategyRejection, sparse.StrategyShuffle} {
		set, err := sparse.NewIndexSet(6, sparse.WithStrategy(st))
		require.NoError(t, err)
		row, err := set.Draw(sampler.New(sampler.WithSeed(5)), 6)
		require.NoError(t, err)
		require.Equal(t, []int64{0, 1, 2, 3, 4, 5}, row)
	}
}

func TestDraw_RejectionRedrawsCollisions(t *testing.T) {
	t.Parallel()

	// Accept 3; reject 3, accept 1; reject 1 twice, accept 0.
	src := samplertest.NewSource(3, 3, 1, 1, 1, 0)
	s := sampler.New(sampler.WithRand(rand.New(src)))

	set, err := sparse.NewIndexSet(4)
	require.NoError(t, err)
	row, err := set.Draw(s, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, row)
	require.Zero(t, src.Remaining())
}

func TestDraw_ShufflePrefix(t *testing.T) {
	t.Parallel()

	// perm = [0 1 2 3 4]
	// j=0: k=0+4 → [4 1 2 3 0]; j=1: k=1+0 → unchanged. Row {4,1} → [1 4].
	s := sampler.New(sampler.WithRand(samplertest.Rand(4, 0)))
	set, err := sparse.NewIndexSet(5, sparse.WithStrategy(sparse.StrategyShuffle))
	require.NoError(t, err)
	row, err := set.Draw(s, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4}, row)
}

func TestDraw_EmptyRow(t *testing.T) {
	t.Parallel()

	set, err := sparse.NewIndexSet(3)
	require.NoError(t, err)
	// An empty script proves no draw happens for a zero-length row.
	row, err := set.Draw(sampler.New(sampler.WithRand(samplertest.Rand())), 0)
	require.NoError(t, err)
	require.Empty(t, row)
}

func TestDraw_Errors(t *testing.T) {
	t.Parallel()

	set, err := sparse.NewIndexSet(3)
	require.NoError(t, err)
	s := sampler.New(sampler.WithSeed(1))

	_, err = set.Draw(s, 4)
	require.ErrorIs(t, err, sparse.ErrRowTooLong)
	_, err = set.Draw(s, -1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func BenchmarkDraw(b *testing.B) {
	const cols = 4096
	for _, st := range []sparse.Strategy{sparse.StrategyRejection, sparse.StrategyShuffle} {
		for _, n := range []int{16, 512, 3000} {
			b.Run(st.String()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				b.ReportAllocs()
				set, err := sparse.NewIndexSet(cols, sparse.WithStrategy(st))
				if err != nil {
					b.Fatal(err)
				}
				s := sampler.New(sampler.WithSeed(1))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := set.Draw(s, n); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
