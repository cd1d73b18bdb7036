// Package sparse generates the structure and values of a random sparse
// matrix without ever materializing it.
//
// The pieces are consumed in this order by the encoder:
//
//   - RowLengths: one nonzero count per row, each in [0, floor(cols*2*ratio)),
//     plus their sum.
//   - IndexSet.Draw: for each row, that many distinct column indices sorted
//     ascending, produced in a reusable working set of capacity cols.
//   - Values: strictly positive magnitudes, streamed one at a time to a sink.
//
// All generators take an explicit *sampler.Sampler; nothing touches global
// random state. Misconfiguration is reported through the sentinels in
// errors.go (ErrDegenerateRange, ErrRowTooLong, ...) and never by panicking.
//
// Index sampling strategies (WithStrategy):
//
//   - StrategyRejection (default): draw a column, rescan the accepted
//     prefix, redraw on collision. Cheap for sparse rows, slow as n nears cols.
//   - StrategyShuffle: partial Fisher-Yates over a permutation of [0,cols)
//     kept across rows. O(n) per row.
//   - StrategyAuto: shuffle when a row is denser than half the columns,
//     rejection otherwise.
//
// Length policies (WithLengthPolicy), for a row whose sampled length exceeds
// cols and so cannot hold that many distinct indices:
//
//   - LengthStrict (default): RowLengths fails with ErrRowTooLong.
//   - LengthClamp: the row is capped at cols.
//
// Buffers are sized up front; a shape whose row-length array or working set
// cannot be allocated is reported as ErrTooLarge.
//
//	s := sampler.New(sampler.WithSeed(7))
//	lengths, total, err := sparse.RowLengths(s, sparse.Shape{Rows: 100, Cols: 50, Ratio: 0.1})
//	set, err := sparse.NewIndexSet(50, sparse.WithStrategy(sparse.StrategyAuto))
//	row, err := set.Draw(s, int(lengths[0]))
package sparse
