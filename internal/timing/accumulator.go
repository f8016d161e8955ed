// Package timing converts a stream of wall-clock frame durations into
// independently paced fixed-cadence events.
package timing

import (
	"errors"
	"fmt"
)

// ErrInvalidCadence is returned when a cadence threshold is zero, negative or NaN.
var ErrInvalidCadence = errors.New("cadence must be positive")

// Accumulator tracks milliseconds not yet spent toward the next event of one cadence.
// When it fires, exactly one threshold is subtracted so the remainder carries
// over to the next period and the cadence does not drift.
type Accumulator struct {
	threshold   float64
	accumulated float64
}

// NewAccumulator creates an accumulator that fires once per thresholdMillis.
func NewAccumulator(thresholdMillis float64) (*Accumulator, error) {
	if !(thresholdMillis > 0) {
		return nil, fmt.Errorf("timing: threshold %vms: %w", thresholdMillis, ErrInvalidCadence)
	}
	return &Accumulator{threshold: thresholdMillis}, nil
}

// Add accumulates elapsed time. Negative deltas are ignored.
func (a *Accumulator) Add(deltaMillis float64) {
	if deltaMillis > 0 {
		a.accumulated += deltaMillis
	}
}

// Consume fires at most once: if the accumulated time strictly exceeds the
// threshold, one threshold is subtracted and true is returned.
func (a *Accumulator) Consume() bool {
	if a.accumulated > a.threshold {
		a.accumulated -= a.threshold
		return true
	}
	return false
}

// Threshold returns the cadence period in milliseconds.
func (a *Accumulator) Threshold() float64 {
	return a.threshold
}

// Accumulated returns the unspent milliseconds.
func (a *Accumulator) Accumulated() float64 {
	return a.accumulated
}

// Reset discards any unspent time.
func (a *Accumulator) Reset() {
	a.accumulated = 0
}
