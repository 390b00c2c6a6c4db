package multiunit

import (
	"sort"

	"github.com/katalvlaran/muvr/kernel"
)

// profile caches everything about one observation that pair distances
// reuse: sorted per-channel trains, the sorted pooled train (all
// channels merged, identity discarded), and their self inner products.
//
// Matrix builders compute one profile per observation, so the square
// case never re-derives a self term per pair — and symmetric cells are
// assembled from the very same closed-form terms, which is what makes
// them bit-for-bit equal.
type profile struct {
	channels [][]float64 // per-channel spike times, ascending
	pooled   []float64   // concatenation of all channels, ascending
	selfCh   []float64   // kernel.SelfInnerProduct per channel
	selfPool float64     // kernel.SelfInnerProduct of the pooled train
}

// newProfile precomputes the profile of o under time constant tau.
// Callers validate o and tau first; kernel errors cannot occur here
// and are surfaced only as a defensive propagation.
func newProfile(o Observation, tau float64) (*profile, error) {
	p := &profile{
		channels: make([][]float64, len(o)),
		selfCh:   make([]float64, len(o)),
	}

	total := 0
	for c, train := range o {
		p.channels[c] = ascending(train)
		total += len(train)
	}

	// Pooled train: raw event values of all channels merged, so its
	// kernel products carry the cross-channel terms.
	p.pooled = make([]float64, 0, total)
	for _, train := range p.channels {
		p.pooled = append(p.pooled, train...)
	}
	sort.Float64s(p.pooled)

	var err error
	for c, train := range p.channels {
		if p.selfCh[c], err = kernel.SelfInnerProduct(train, tau); err != nil {
			return nil, err
		}
	}
	if p.selfPool, err = kernel.SelfInnerProduct(p.pooled, tau); err != nil {
		return nil, err
	}

	return p, nil
}

// ascending returns train itself when already sorted, otherwise a
// sorted copy. The observation is never mutated.
func ascending(train []float64) []float64 {
	if sort.Float64sAreSorted(train) {
		return train
	}
	c := make([]float64, len(train))
	copy(c, train)
	sort.Float64s(c)

	return c
}
