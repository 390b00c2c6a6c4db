package multiunit_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/muvr/multiunit"
)

// benchmarkSquare runs SquareMatrix over n observations of `cells`
// channels with the reference parameters and the given worker count.
func benchmarkSquare(b *testing.B, n, cells, workers int) {
	obs := randomObservations(n, cells, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := multiunit.SquareMatrix(obs, refParams, multiunit.WithConcurrency(workers)); err != nil {
			b.Fatalf("SquareMatrix failed: %v", err)
		}
	}
}

// BenchmarkSquareMatrix_10x20_Serial benchmarks 10 observations × 20 cells, one worker.
func BenchmarkSquareMatrix_10x20_Serial(b *testing.B) { benchmarkSquare(b, 10, 20, 1) }

// BenchmarkSquareMatrix_10x20_Parallel4 benchmarks the same load on four workers.
func BenchmarkSquareMatrix_10x20_Parallel4(b *testing.B) { benchmarkSquare(b, 10, 20, 4) }

// BenchmarkSquareMatrix_30x10_Serial benchmarks 30 observations × 10 cells, one worker.
func BenchmarkSquareMatrix_30x10_Serial(b *testing.B) { benchmarkSquare(b, 30, 10, 1) }

// BenchmarkSquareMatrix_30x10_Parallel4 benchmarks the same load on four workers.
func BenchmarkSquareMatrix_30x10_Parallel4(b *testing.B) { benchmarkSquare(b, 30, 10, 4) }

// BenchmarkDistance_Pair benchmarks one pair evaluation end to end
// (profiles rebuilt each call, the single-pair entry point).
func BenchmarkDistance_Pair(b *testing.B) {
	obs := randomObservations(2, 50, rand.New(rand.NewSource(43)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := multiunit.Distance(obs[0], obs[1], refParams); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}
