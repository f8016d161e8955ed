package timing

import "time"

// Clock reports elapsed milliseconds since its last reset.
type Clock interface {
	ElapsedMillis() float64
	Reset()
}

// SystemClock measures real time using the monotonic clock reading of time.Now.
type SystemClock struct {
	now   func() time.Time
	start time.Time
}

// NewSystemClock creates a clock started at the current time.
func NewSystemClock() *SystemClock {
	c := &SystemClock{now: time.Now}
	c.Reset()
	return c
}

// ElapsedMillis returns fractional milliseconds since the last Reset.
func (c *SystemClock) ElapsedMillis() float64 {
	return float64(c.now().Sub(c.start)) / float64(time.Millisecond)
}

// Reset restarts the measurement from now.
func (c *SystemClock) Reset() {
	c.start = c.now()
}

// ManualClock is a controllable clock for tests and deterministic replays.
type ManualClock struct {
	elapsed float64
}

// NewManualClock creates a manual clock with zero elapsed time.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Advance adds milliseconds to the elapsed time.
func (c *ManualClock) Advance(millis float64) {
	c.elapsed += millis
}

// AdvanceDuration adds a duration to the elapsed time.
func (c *ManualClock) AdvanceDuration(d time.Duration) {
	c.Advance(float64(d) / float64(time.Millisecond))
}

// ElapsedMillis returns the elapsed time since the last Reset.
func (c *ManualClock) ElapsedMillis() float64 {
	return c.elapsed
}

// Reset zeroes the elapsed time.
func (c *ManualClock) Reset() {
	c.elapsed = 0
}
