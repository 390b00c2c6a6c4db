// Package multiunit computes the multi-unit van Rossum distance
// between multi-channel spike-train observations and assembles full
// pairwise distance matrices.
//
// What:
//
//   - Observation: one spike train per recorded channel/cell.
//   - Params: the exponential-kernel time constant tau and the
//     correlation weight mixing pooled vs per-channel contributions.
//   - Distance: the metric for one pair of observations —
//     d² = w·D²(pooled) + (1−w)·Σ_c d²_c, reported as √max(d², 0).
//   - SquareMatrix / RectangularMatrix: pairwise matrices over
//     observation collections, assembled in parallel.
//   - SweepSquare / SweepRectangular: one matrix per point of a
//     weight × tau grid (thin loops above the core metric).
//
// Why the pooled term matters:
//
//	The pooled distance merges the raw spike times of all channels and
//	so contains cross-channel kernel terms; that is exactly what
//	encodes correlation between cells. With w=1 all channels act as
//	one fully-correlated unit, with w=0 they are fully independent.
//
// Guarantees:
//
//   - Validation is eager and atomic: parameters, channel arity and
//     timestamp finiteness are checked before any cell is computed;
//     no partial matrices are ever returned.
//   - The square matrix has an exactly-zero diagonal (never computed)
//     and is exactly symmetric (upper triangle computed once, mirrored).
//   - Parallel assembly is deterministic: each cell is written exactly
//     once by exactly one worker, so worker count never changes values.
//
// Errors:
//
//   - kernel.ErrNonPositiveTau:  tau ≤ 0 or NaN.
//   - ErrNonFiniteWeight:        NaN/Inf correlation weight.
//   - ErrChannelCountMismatch:   observations of differing arity.
//   - ErrNonFiniteSpike:         NaN/Inf timestamp in a train.
//   - ErrNoObservations:         empty observation collection.
//
// Complexity: one pair costs O(S·log S) in the total spike count S of
// the two observations (profile sorting dominates; each kernel product
// is a linear merge scan). A square matrix over n observations costs
// n profile builds plus n·(n−1)/2 pair evaluations.
package multiunit
