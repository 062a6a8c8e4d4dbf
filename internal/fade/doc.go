// Package fade implements the timed reveal primitive of the tour engine.
//
// An Animator drives one visual element through fade-in, hold and fade-out.
// It is advanced explicitly, once per scheduling quantum, with the elapsed
// time of that quantum; nothing in this package starts goroutines or reads
// the wall clock. Play restarts from zero and Stop forces the zero state in
// the same call, so a partially revealed element is never left behind.
package fade
