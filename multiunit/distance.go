package multiunit

import (
	"math"

	"github.com/katalvlaran/muvr/kernel"
)

// Distance computes the multi-unit van Rossum distance between two
// observations:
//
//	d² = w·D² + (1−w)·Σ_c d²_c,    distance = √max(d², 0),
//
// where d²_c is the per-channel squared van Rossum distance and D² is
// the squared distance between the two pooled trains (all channels
// merged, channel identity discarded).
//
// Contract:
//   - p must validate (tau > 0, finite weight).
//   - a and b must have the same channel arity (ErrChannelCountMismatch).
//   - Every timestamp must be finite (ErrNonFiniteSpike).
//   - All checks run before any computation; failures are deterministic.
//
// Complexity: O(S·log S) in the total spike count S of the pair.
func Distance(a, b Observation, p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if a.Channels() != b.Channels() {
		return 0, ErrChannelCountMismatch
	}
	if err := validateObservation(a); err != nil {
		return 0, err
	}
	if err := validateObservation(b); err != nil {
		return 0, err
	}

	pa, err := newProfile(a, p.Tau)
	if err != nil {
		return 0, err
	}
	pb, err := newProfile(b, p.Tau)
	if err != nil {
		return 0, err
	}

	return distanceOfProfiles(pa, pb, p)
}

// distanceOfProfiles evaluates the metric from two precomputed
// profiles. Inputs are already validated; only the cross inner
// products remain to be computed.
func distanceOfProfiles(pa, pb *profile, p Params) (float64, error) {
	// Per-channel squared distances, clamped against cancellation.
	var sumCh float64
	for c := range pa.channels {
		cross, err := kernel.InnerProduct(pa.channels[c], pb.channels[c], p.Tau)
		if err != nil {
			return 0, err
		}
		sumCh += clampNonNegative(pa.selfCh[c] + pb.selfCh[c] - 2*cross)
	}

	// Pooled squared distance: cross-channel kernel terms live here.
	crossPool, err := kernel.InnerProduct(pa.pooled, pb.pooled, p.Tau)
	if err != nil {
		return 0, err
	}
	pool := clampNonNegative(pa.selfPool + pb.selfPool - 2*crossPool)

	w := p.CorrelationWeight
	d2 := w*pool + (1-w)*sumCh

	return math.Sqrt(clampNonNegative(d2)), nil
}

// clampNonNegative maps tiny negative floating-point cancellation
// residue to exactly 0. True distances are never negative.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
