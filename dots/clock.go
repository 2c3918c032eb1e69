package dots

import "time"

// DefaultTPS is the fixed simulation rate in updates per second
const DefaultTPS = 60

// Clock is a fixed-timestep accumulator. It turns variable frame times into
// a whole number of fixed simulation updates.
type Clock struct {
	step    time.Duration
	pending time.Duration
	last    time.Time
	started bool
}

// NewClock creates a clock permitting tps updates per second
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Clock{
		step: time.Second / time.Duration(tps),
	}
}

// Advance adds elapsed time and returns how many fixed updates are due.
// A slow frame yields several catch-up updates; a fast frame may yield none.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.pending += elapsed
	}

	permits := 0
	for c.pending >= c.step {
		c.pending -= c.step
		permits++
	}
	return permits
}

// Tick advances by the wall time since the previous Tick.
// The first call only records now and returns 0.
func (c *Clock) Tick(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return c.Advance(elapsed)
}

// Step returns the fixed update interval
func (c *Clock) Step() time.Duration {
	return c.step
}

// Pending returns accumulated time not yet spent on an update
func (c *Clock) Pending() time.Duration {
	return c.pending
}
