package kernel

// Test-bridge exposing the naive O(n·m) reference evaluation to
// kernel_test only, so the merge scan can be checked against it
// without widening the production API.

// InnerProductNaive_TestOnly forwards to the private reference
// implementation. No validation: tests supply well-formed inputs.
func InnerProductNaive_TestOnly(x, y []float64, tau float64) float64 {
	return innerProductNaive(x, y, tau)
}
