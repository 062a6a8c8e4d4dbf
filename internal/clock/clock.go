// Package clock supplies the per-quantum elapsed time that drives fades,
// waits and hover pulses. Hosts advance the orchestrator once per quantum
// with the value returned by Elapsed.
package clock

import "time"

// Clock reports the time elapsed during the current scheduling quantum.
type Clock interface {
	Elapsed() time.Duration
}

// Fixed is a Clock that always reports the same quantum. Tests and the
// deterministic CLI mode use it so that totals are exact multiples of the
// quantum.
type Fixed time.Duration

// Elapsed returns the fixed quantum.
func (f Fixed) Elapsed() time.Duration { return time.Duration(f) }

// Wall measures real time between successive calls to Elapsed, scaled by
// Speed. The first call after construction or Restart returns zero.
type Wall struct {
	now   func() time.Time
	last  time.Time
	speed float64
}

// NewWall returns a wall clock running at the given speed multiplier.
// A non-positive speed is treated as 1.
func NewWall(speed float64) *Wall {
	if speed <= 0 {
		speed = 1
	}
	return &Wall{now: time.Now, speed: speed}
}

// Restart forgets the previous sample so the next quantum starts at zero.
func (w *Wall) Restart() {
	w.last = time.Time{}
}

// Elapsed returns the scaled real time since the previous call.
func (w *Wall) Elapsed() time.Duration {
	now := w.now()
	if w.last.IsZero() {
		w.last = now
		return 0
	}
	d := now.Sub(w.last)
	w.last = now
	if d < 0 {
		return 0
	}
	return time.Duration(float64(d) * w.speed)
}
