package timing

import (
	"fmt"
)

// Cadence holds the fixed periods of the three scheduled event kinds.
type Cadence struct {
	UpdateMillis     float64 // Fixed update step, also the delta handed to update logic
	DrawMillis       float64 // Period between draw passes
	DiagnosticMillis float64 // Period between diagnostic reports
}

// DefaultCadence returns 60 updates and 60 draws per second with one
// diagnostic report per second.
func DefaultCadence() Cadence {
	return Cadence{
		UpdateMillis:     1000.0 / 60,
		DrawMillis:       1000.0 / 60,
		DiagnosticMillis: 1000,
	}
}

// CadenceFromRates builds a Cadence from per-second rates.
func CadenceFromRates(updatesPerSecond, drawsPerSecond, diagnosticMillis float64) (Cadence, error) {
	if !(updatesPerSecond > 0) {
		return Cadence{}, fmt.Errorf("timing: update rate %v: %w", updatesPerSecond, ErrInvalidCadence)
	}
	if !(drawsPerSecond > 0) {
		return Cadence{}, fmt.Errorf("timing: draw rate %v: %w", drawsPerSecond, ErrInvalidCadence)
	}
	return Cadence{
		UpdateMillis:     1000 / updatesPerSecond,
		DrawMillis:       1000 / drawsPerSecond,
		DiagnosticMillis: diagnosticMillis,
	}, nil
}

// Events reports which scheduled events fired during one Advance call.
type Events struct {
	Update      bool
	UpdateDelta float64 // Nominal fixed step; zero when Update is false
	Draw        bool
	Diagnostic  bool
	Frames      int // Frames rendered since the previous diagnostic; set when Diagnostic is true
}

// Any returns true if at least one event fired.
func (e Events) Any() bool {
	return e.Update || e.Draw || e.Diagnostic
}

// Scheduler decouples wall-clock frame time from update, draw and diagnostic rates.
// It is a pure synchronous state machine driven from a single goroutine.
type Scheduler struct {
	cadence    Cadence
	update     *Accumulator
	draw       *Accumulator
	diagnostic *Accumulator
	frames     int
}

// NewScheduler validates the cadence and creates a scheduler with empty accumulators.
func NewScheduler(c Cadence) (*Scheduler, error) {
	update, err := NewAccumulator(c.UpdateMillis)
	if err != nil {
		return nil, fmt.Errorf("timing: update cadence: %w", err)
	}
	draw, err := NewAccumulator(c.DrawMillis)
	if err != nil {
		return nil, fmt.Errorf("timing: draw cadence: %w", err)
	}
	diagnostic, err := NewAccumulator(c.DiagnosticMillis)
	if err != nil {
		return nil, fmt.Errorf("timing: diagnostic cadence: %w", err)
	}

	return &Scheduler{
		cadence:    c,
		update:     update,
		draw:       draw,
		diagnostic: diagnostic,
	}, nil
}

// Advance feeds elapsed wall time into all three accumulators and reports
// which events fire. Each event fires at most once per call, even when the
// caller is several periods behind; the backlog drains on later calls.
func (s *Scheduler) Advance(deltaMillis float64) Events {
	s.update.Add(deltaMillis)
	s.draw.Add(deltaMillis)
	s.diagnostic.Add(deltaMillis)

	var ev Events

	if s.update.Consume() {
		ev.Update = true
		ev.UpdateDelta = s.update.Threshold()
	}

	if s.draw.Consume() {
		ev.Draw = true
		s.frames++
	}

	if s.diagnostic.Consume() {
		ev.Diagnostic = true
		ev.Frames = s.frames
		s.frames = 0
	}

	return ev
}

// Frames returns the number of draw events since the last diagnostic.
func (s *Scheduler) Frames() int {
	return s.frames
}

// Cadence returns the configured periods.
func (s *Scheduler) Cadence() Cadence {
	return s.cadence
}

// Pending returns the unspent milliseconds of the update, draw and diagnostic accumulators.
func (s *Scheduler) Pending() (update, draw, diagnostic float64) {
	return s.update.Accumulated(), s.draw.Accumulated(), s.diagnostic.Accumulated()
}
