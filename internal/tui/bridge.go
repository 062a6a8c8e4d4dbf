package tui

import (
	"fmt"
	"time"

	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/tour"
)

// DefaultLogCapacity is the number of events kept for the logs panel.
const DefaultLogCapacity = 500

type entryKind int

const (
	entryRun entryKind = iota
	entryStep
	entrySkip
	entryEnd
)

// logEntry is one line of the logs panel.
type logEntry struct {
	at   time.Duration
	kind entryKind
	text string
}

// SessionStats counts what happened since the dashboard started.
type SessionStats struct {
	Runs      int
	Completed int
	Cancelled int
	Steps     int
	Skipped   int
}

// EventLog bridges orchestrator callbacks into the dashboard. Hooks run
// synchronously inside Tick, which the model only calls from Update, so no
// locking is needed. Bubbletea copies the model on every Update; the model
// keeps the log behind a pointer so the hooks and the views share it.
type EventLog struct {
	entries  []logEntry
	capacity int
	stats    SessionStats
	version  uint64
}

// NewEventLog returns a log keeping at most capacity entries.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &EventLog{capacity: capacity}
}

// Hooks returns orchestrator hooks that feed the log.
func (l *EventLog) Hooks() orchestration.Hooks {
	return orchestration.Hooks{
		OnRunStart: func(s orchestration.Snapshot) {
			l.stats.Runs++
			l.add(s.Elapsed, entryRun, fmt.Sprintf("begin run %s", shortID(s.RunID)))
		},
		OnStepStart: func(s orchestration.Snapshot, step tour.Step) {
			l.add(s.Elapsed, entryStep, fmt.Sprintf("%d/%d %s", s.Step+1, s.Steps, step))
		},
		OnStepEnd: func(orchestration.Snapshot, tour.Step) {
			l.stats.Steps++
		},
		OnRunEnd: func(s orchestration.Snapshot) {
			switch s.Status {
			case orchestration.StatusCompleted:
				l.stats.Completed++
			case orchestration.StatusCancelled:
				l.stats.Cancelled++
			}
			l.add(s.Elapsed, entryEnd, s.Status.String())
		},
		OnSkip: func(s orchestration.Snapshot, err error) {
			l.stats.Skipped++
			l.add(s.Elapsed, entrySkip, "skip "+err.Error())
		},
	}
}

func (l *EventLog) add(at time.Duration, kind entryKind, text string) {
	l.entries = append(l.entries, logEntry{at: at, kind: kind, text: text})
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
	l.version++
}

// all returns the retained entries, oldest first.
func (l *EventLog) all() []logEntry { return l.entries }

// Stats returns the session counters.
func (l *EventLog) Stats() SessionStats { return l.stats }

// Version changes every time an entry is added.
func (l *EventLog) Version() uint64 { return l.version }

// shortID keeps the first block of a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
