package core

import (
	"math"
	"time"
)

// MaxFrameStep caps a single clock advance, in seconds.
const MaxFrameStep = 0.25

// Clock is the monotonic elapsed-time source shared by all simulators. It is
// advanced once per rendered frame and read by everything else.
type Clock struct {
	elapsed float64
	last    time.Time
}

// NewClock returns a clock starting at zero elapsed seconds.
func NewClock() *Clock { return &Clock{} }

// Elapsed reports the accumulated simulation time in seconds.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Advance moves the clock forward by dt seconds and returns the step actually
// applied. Non-positive and NaN steps are ignored; large steps are capped.
func (c *Clock) Advance(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}
	c.elapsed += dt
	return dt
}

// Tick derives the frame step from wall time and advances the clock. The first
// call only records the reference instant.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	return c.Advance(delta.Seconds())
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.last = time.Time{}
}
