package component

import "time"

// Timer accumulates frame deltas and fires once the accumulated time reaches
// its period. It is the cooldown primitive for fire rate, enemy movement and
// particle lifetime.
type Timer struct {
	Elapsed time.Duration
	Period  time.Duration
}

// NewTimer creates a timer that fires every `seconds` of accumulated time.
func NewTimer(seconds float64) Timer {
	return Timer{Period: time.Duration(seconds * float64(time.Second))}
}

// Advance adds delta to the accumulated time. It reports true and resets the
// accumulator when the period has been reached. A non-positive period fires on
// every call.
func (t *Timer) Advance(delta time.Duration) bool {
	if t == nil {
		return false
	}
	if delta > 0 {
		t.Elapsed += delta
	}
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = 0
	return true
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.Elapsed = 0
}

// Progress returns Elapsed/Period clamped to [0, 1].
func (t Timer) Progress() float64 {
	if t.Period <= 0 {
		return 1
	}
	p := float64(t.Elapsed) / float64(t.Period)
	if p > 1 {
		return 1
	}
	return p
}
