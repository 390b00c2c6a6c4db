// Package muvr computes multi-unit van Rossum distances between
// multi-channel spike-train recordings — from single-train kernel
// inner products to full pairwise distance matrices.
//
// 🚀 What is muvr?
//
//	A pure-Go library for quantifying dissimilarity between neural
//	population activity patterns. Each observation is one spike train
//	per recorded cell; the metric convolves every train with a causal
//	exponential kernel of time constant tau and measures the L2
//	distance between the resulting functions, mixing per-channel and
//	cross-channel (pooled) contributions through a correlation weight.
//
// ✨ Why choose muvr?
//
//   - Closed-form kernels – no numerical convolution, no resolution grid;
//     inner products are exact sums evaluated by a sorted-merge scan
//   - Numerically safe – every exponent is ≤ 0, cancellation is clamped,
//     the square-matrix diagonal is zero by construction
//   - Parallel matrix assembly – upper-triangle + mirror for the square
//     case, bounded worker pool, deterministic regardless of scheduling
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	kernel/    — exponential-kernel inner products & single-train distances
//	matrix/    — dense row-major float64 result container
//	multiunit/ — observations, metric parameters, distance matrices, sweeps
//
// Quick sketch:
//
//	obs := []multiunit.Observation{
//	  {{1.0, 2.0}, {1.5}}, // two channels
//	  {{1.1, 2.1}, {1.4}},
//	}
//	p := multiunit.Params{CorrelationWeight: 0.5, Tau: 0.012}
//	d, err := multiunit.SquareMatrix(obs, p)
//
// Dive into each package's doc.go for contracts, complexity and errors.
package muvr
