package anim

import "time"

// Clock provides time for animations. The default implementation uses
// system time; tests inject a fake clock through [Config] to control
// timing deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses the system monotonic clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default wall/monotonic clock.
func SystemClock() Clock { return systemClock{} }

// elapsedMS returns the whole milliseconds between two readings of the
// same clock. It never returns a negative value: a clock that stands
// still (or a caller that re-reads within the same millisecond) yields 0.
func elapsedMS(from, to time.Time) int32 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int32(d / time.Millisecond)
}
