package multiunit

import (
	"errors"
	"math"

	"github.com/katalvlaran/muvr/kernel"
)

var (
	// ErrChannelCountMismatch indicates observations of differing channel
	// arity were compared; arity must be identical across one call.
	ErrChannelCountMismatch = errors.New("multiunit: observations have different channel counts")

	// ErrNonFiniteSpike indicates a spike train containing NaN or ±Inf.
	ErrNonFiniteSpike = errors.New("multiunit: spike train contains a non-finite timestamp")

	// ErrNonFiniteWeight indicates a NaN or ±Inf correlation weight.
	ErrNonFiniteWeight = errors.New("multiunit: correlation weight must be finite")

	// ErrNoObservations indicates an empty observation collection where
	// at least one observation is required.
	ErrNoObservations = errors.New("multiunit: observation collection is empty")
)

// Observation is one multi-channel recording: one spike train (sorted
// or not) per channel. The library never mutates an Observation.
type Observation [][]float64

// Channels returns the channel arity of the observation.
func (o Observation) Channels() int {
	return len(o)
}

// Params carries the two scalars of the metric.
//
//   - CorrelationWeight mixes the pooled (cross-channel) squared
//     distance against the sum of per-channel squared distances:
//     1 ⇒ fully correlated (pooled only), 0 ⇒ fully independent.
//     Conventionally in [0,1]; any finite value is accepted, the
//     formula is well-defined outside the range.
//   - Tau is the exponential kernel time constant, strictly positive.
type Params struct {
	CorrelationWeight float64
	Tau               float64
}

// Validate checks the parameter scalars. Tau validation is owned by
// the kernel package (the sentinel is kernel.ErrNonPositiveTau).
func (p Params) Validate() error {
	if !(p.Tau > 0) {
		return kernel.ErrNonPositiveTau
	}
	if math.IsNaN(p.CorrelationWeight) || math.IsInf(p.CorrelationWeight, 0) {
		return ErrNonFiniteWeight
	}

	return nil
}
