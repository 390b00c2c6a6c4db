package kernel

// DistanceSquared computes the squared van Rossum distance between two
// spike trains under the exponential kernel of time constant tau:
//
//	d²(X,Y) = K(X,X) + K(Y,Y) − 2·K(X,Y).
//
// Contract:
//   - tau must be > 0 (ErrNonPositiveTau otherwise).
//   - Both trains empty ⇒ 0. One empty ⇒ the self product of the other,
//     which is strictly positive for any non-empty train: a missing
//     spike always increases distance.
//   - The result is ≥ 0 by positive-definiteness of the kernel; a tiny
//     negative value from cancellation of the two large self terms is
//     clamped to exactly 0 rather than propagated.
//   - All three products are evaluated by the same merge scan, so for
//     identical trains the cancellation is exact, not approximate.
//
// Complexity: three merge scans over the sorted trains.
func DistanceSquared(x, y []float64, tau float64) (float64, error) {
	if !(tau > 0) {
		return 0, ErrNonPositiveTau
	}

	// Sort once so the three products share the same views.
	xs, ys := ascending(x), ascending(y)

	var xx, yy float64
	if len(xs) > 0 {
		xx = innerProductSorted(xs, xs, tau)
	}
	if len(ys) > 0 {
		yy = innerProductSorted(ys, ys, tau)
	}
	var xy float64
	if len(xs) > 0 && len(ys) > 0 {
		xy = innerProductSorted(xs, ys, tau)
	}

	d2 := xx + yy - 2*xy
	if d2 < 0 {
		d2 = 0
	}

	return d2, nil
}
