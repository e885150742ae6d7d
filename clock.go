package motionlab

import "time"

// Clock is a monotonic time source reporting milliseconds, in the manner of
// performance.now().
type Clock interface {
	Now() float64
}

// FrameRequester schedules fn to run once at the next display refresh with
// the refresh timestamp in milliseconds. Requests are one-shot; a callback
// that wants to keep running must request again.
type FrameRequester interface {
	RequestFrame(fn func(timestamp float64))
}

// SystemClock measures milliseconds elapsed since its creation using the
// runtime's monotonic clock reading.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns milliseconds since the clock was created.
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is a Clock advanced by hand. Used by tests and by hosts that
// derive time from an external source.
type ManualClock struct {
	T float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 { return c.T }

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms float64) { c.T += ms }
