// Package kernel evaluates closed-form inner products of spike trains
// under a causal exponential kernel, and the squared van Rossum
// distance those inner products induce.
//
// What:
//
//   - InnerProduct(x, y, tau)  = Σ_i Σ_j exp(-|x_i - y_j| / tau).
//   - SelfInnerProduct(x, tau) = InnerProduct(x, x, tau).
//   - DistanceSquared(x, y, tau) = K(x,x) + K(y,y) − 2·K(x,y),
//     clamped at 0 against floating-point cancellation.
//
// Why:
//
//   - Convolving each train with exp(-t/tau)·H(t) and integrating the
//     squared difference has this exact closed form, so no discretized
//     convolution grid is ever needed.
//   - The merge-scan evaluation only ever exponentiates non-positive
//     arguments, so large timestamps cannot overflow.
//   - Self and cross products share one evaluation order, so the
//     distance between truly identical trains cancels to exactly 0.
//
// Complexity:
//
//   - InnerProduct:     O(n + m) when inputs are sorted,
//     O(n·log n + m·log m) otherwise (defensive copy + sort).
//   - SelfInnerProduct: O(n) when sorted, O(n·log n) otherwise.
//   - DistanceSquared:  the three products above.
//
// Errors:
//
//   - ErrNonPositiveTau: tau ≤ 0 or NaN (the kernel is undefined there).
//
// Inputs are never mutated: an unsorted train is copied before sorting.
package kernel
