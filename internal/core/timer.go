package core

import "time"

// PeriodicTimer tracks when a fixed period has elapsed.
//
// Update must be called once per frame with the frame delta; Triggered then
// reports whether that particular update crossed a period boundary. A large
// delta fires at most once: leftover time beyond a second full period is
// dropped rather than replayed on later frames.
type PeriodicTimer struct {
	period      time.Duration
	accumulated time.Duration
	triggered   bool
}

// NewPeriodicTimer creates a timer that fires every period.
func NewPeriodicTimer(period time.Duration) *PeriodicTimer {
	return &PeriodicTimer{period: period}
}

// NewPeriodicTimerHz creates a timer that fires hz times per second.
func NewPeriodicTimerHz(hz float64) *PeriodicTimer {
	return NewPeriodicTimer(time.Duration(float64(time.Second) / hz))
}

// Update advances the timer by dt. Negative deltas are not supported.
func (t *PeriodicTimer) Update(dt time.Duration) {
	t.accumulated += dt

	if t.accumulated >= t.period {
		t.accumulated -= t.period

		if t.accumulated >= t.period {
			t.accumulated = 0
		}

		t.triggered = true
	} else {
		t.triggered = false
	}
}

// Triggered returns true if the most recent Update crossed a period boundary.
func (t *PeriodicTimer) Triggered() bool {
	return t.triggered
}

// Accumulated returns the time elapsed since the last trigger.
func (t *PeriodicTimer) Accumulated() time.Duration {
	return t.accumulated
}

// Period returns the configured period.
func (t *PeriodicTimer) Period() time.Duration {
	return t.period
}
