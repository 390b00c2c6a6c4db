package kernel

import (
	"errors"
	"math"
	"sort"
)

// ErrNonPositiveTau indicates tau ≤ 0 (or NaN); the exponential kernel
// is undefined for such a time constant.
var ErrNonPositiveTau = errors.New("kernel: tau must be > 0")

// InnerProduct computes K(X,Y) = Σ_i Σ_j exp(-|x_i - y_j| / tau).
//
// Contract:
//   - tau must be > 0 (ErrNonPositiveTau otherwise; NaN is rejected too).
//   - Either train may be empty; the product is then 0.
//   - Inputs are read-only; unsorted trains are copied before sorting.
//
// The sum is over unordered index pairs, so the result does not depend
// on the input order — sorting is an evaluation detail, not a contract.
//
// Complexity: O(n + m) for sorted inputs, O(n·log n + m·log m) otherwise.
func InnerProduct(x, y []float64, tau float64) (float64, error) {
	// Validate the time constant (NaN fails the comparison as required).
	if !(tau > 0) {
		return 0, ErrNonPositiveTau
	}
	// Empty either side ⇒ empty pair set ⇒ zero sum.
	if len(x) == 0 || len(y) == 0 {
		return 0, nil
	}

	return innerProductSorted(ascending(x), ascending(y), tau), nil
}

// SelfInnerProduct computes K(X,X).
//
// It runs the same merge scan as InnerProduct over two views of the
// train. Sharing the evaluation order with the cross product is load
// bearing: DistanceSquared(x, x) then cancels bit-for-bit, so truly
// identical trains are exactly 0 apart, not 0 plus rounding residue.
//
// Complexity: O(n) for sorted input, O(n·log n) otherwise.
func SelfInnerProduct(x []float64, tau float64) (float64, error) {
	if !(tau > 0) {
		return 0, ErrNonPositiveTau
	}
	if len(x) == 0 {
		return 0, nil
	}
	xs := ascending(x)

	return innerProductSorted(xs, xs, tau), nil
}

// innerProductSorted evaluates the kernel sum by a two-pointer merge
// over the sorted trains x and y.
//
// Invariant: after processing the event at time t, sx (resp. sy) holds
// Σ exp(-(t - e)/tau) over all x-events (resp. y-events) processed so
// far. Each cross pair is counted exactly once — at whichever of its
// two events the merge processes later (ties resolved x-first, where
// exp(0) = 1 contributes through the y side).
//
// Every exponent is -(t - prev)/tau ≤ 0, so no term can overflow no
// matter how large the timestamps are.
func innerProductSorted(x, y []float64, tau float64) float64 {
	var (
		total  float64 // accumulated kernel sum
		sx, sy float64 // decayed counts of processed x / y events
		prev   float64 // time of the previously processed event
		inv    = 1 / tau
		i, j   int
	)

	for i < len(x) || j < len(y) {
		// Pick the next event in time order; x wins ties.
		var t float64
		var fromX bool
		if j == len(y) || (i < len(x) && x[i] <= y[j]) {
			t, fromX = x[i], true
			i++
		} else {
			t = y[j]
			j++
		}

		// Decay both running sums to the new reference time.
		if i+j > 1 {
			decay := math.Exp(-(t - prev) * inv)
			sx *= decay
			sy *= decay
		}

		// The new event pairs with every already-processed event of
		// the opposite train; then it joins its own running sum.
		if fromX {
			total += sy
			sx++
		} else {
			total += sx
			sy++
		}
		prev = t
	}

	return total
}

// innerProductNaive is the O(n·m) reference evaluation of the kernel
// sum. It is what the merge scan must reproduce numerically; kept for
// tests and benchmarks only.
func innerProductNaive(x, y []float64, tau float64) float64 {
	var total float64
	for _, xv := range x {
		for _, yv := range y {
			total += math.Exp(-math.Abs(xv-yv) / tau)
		}
	}

	return total
}

// ascending returns x itself when already sorted, otherwise a sorted
// copy. Callers treat the result as read-only.
func ascending(x []float64) []float64 {
	if sort.Float64sAreSorted(x) {
		return x
	}
	c := make([]float64, len(x))
	copy(c, x)
	sort.Float64s(c)

	return c
}
