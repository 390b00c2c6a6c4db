package multiunit

import (
	"github.com/katalvlaran/muvr/matrix"
	"gonum.org/v1/gonum/floats"
)

// Sweeps are orchestration above the core metric: reference analyses
// evaluate the distance over a grid of correlation weights × time
// constants. Each grid point is one independent builder call; the core
// contract (atomic validation, exact symmetry) is untouched.

// SweepSquare computes one square distance matrix per (weight, tau)
// grid point. The result is indexed [wi][ti] following the input
// order. Any failure aborts the whole sweep; no partial grid is
// returned.
func SweepSquare(obs []Observation, weights, taus []float64, opts ...Option) ([][]*matrix.Dense, error) {
	grid := make([][]*matrix.Dense, len(weights))
	for wi, w := range weights {
		grid[wi] = make([]*matrix.Dense, len(taus))
		for ti, tau := range taus {
			m, err := SquareMatrix(obs, Params{CorrelationWeight: w, Tau: tau}, opts...)
			if err != nil {
				return nil, err
			}
			grid[wi][ti] = m
		}
	}

	return grid, nil
}

// SweepRectangular is SweepSquare for two collections; the result is
// indexed [wi][ti] as well.
func SweepRectangular(a, b []Observation, weights, taus []float64, opts ...Option) ([][]*matrix.Dense, error) {
	grid := make([][]*matrix.Dense, len(weights))
	for wi, w := range weights {
		grid[wi] = make([]*matrix.Dense, len(taus))
		for ti, tau := range taus {
			m, err := RectangularMatrix(a, b, Params{CorrelationWeight: w, Tau: tau}, opts...)
			if err != nil {
				return nil, err
			}
			grid[wi][ti] = m
		}
	}

	return grid, nil
}

// Linspace builds an n-point evenly spaced grid over [start, stop],
// endpoints included — the usual way to drive a sweep. n ≤ 0 yields
// nil, n == 1 yields just the start point.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	default:
		return floats.Span(make([]float64, n), start, stop)
	}
}
