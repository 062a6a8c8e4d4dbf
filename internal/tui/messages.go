package tui

import "time"

// TickMsg is sent once per scheduling quantum.
type TickMsg time.Time

// beginMsg starts the first run once the program is running.
type beginMsg struct{}

// ContextCancelledMsg is sent when the session context is done (signal or
// timeout).
type ContextCancelledMsg struct {
	Err error
}
