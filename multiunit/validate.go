package multiunit

import "math"

// validateObservation rejects NaN/±Inf timestamps in any channel.
// Eager by design: no computation may start on malformed input.
func validateObservation(o Observation) error {
	for _, train := range o {
		for _, t := range train {
			if math.IsNaN(t) || math.IsInf(t, 0) {
				return ErrNonFiniteSpike
			}
		}
	}

	return nil
}

// commonChannelCount verifies that every observation across all given
// collections shares one channel arity and that no collection is
// empty, returning that arity.
func commonChannelCount(collections ...[]Observation) (int, error) {
	arity := -1
	for _, col := range collections {
		if len(col) == 0 {
			return 0, ErrNoObservations
		}
		for _, o := range col {
			if arity == -1 {
				arity = o.Channels()
				continue
			}
			if o.Channels() != arity {
				return 0, ErrChannelCountMismatch
			}
		}
	}

	return arity, nil
}

// validateCollections runs the full eager boundary check: arity
// agreement plus finiteness of every timestamp of every observation.
func validateCollections(collections ...[]Observation) error {
	if _, err := commonChannelCount(collections...); err != nil {
		return err
	}
	for _, col := range collections {
		for _, o := range col {
			if err := validateObservation(o); err != nil {
				return err
			}
		}
	}

	return nil
}
