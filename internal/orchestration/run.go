package orchestration

import (
	"slices"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/revealtour/internal/fade"
	"github.com/agbru/revealtour/internal/tour"
)

// RunStatus is the lifecycle state of a Run. Completed and Cancelled are
// terminal; a new Run is always a fresh instance.
type RunStatus int

const (
	StatusNotStarted RunStatus = iota
	StatusRunning
	StatusCompleted
	StatusCancelled
)

// String returns the lower-case name of the status.
func (s RunStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// awaitKind names what a suspended Run is waiting for.
type awaitKind int

const (
	awaitNone awaitKind = iota
	awaitFade
	awaitJoin
	awaitTimer
)

func (k awaitKind) String() string {
	switch k {
	case awaitFade:
		return "fade"
	case awaitJoin:
		return "join"
	case awaitTimer:
		return "timer"
	default:
		return ""
	}
}

// Snapshot is a read-only view of a Run, handed to hooks and hosts.
type Snapshot struct {
	RunID  string
	Tour   string
	Status RunStatus
	// Step is the index of the step being executed. It equals Steps once the
	// Run has completed.
	Step  int
	Steps int
	// Elapsed is the time advanced since the Run began.
	Elapsed time.Duration
	// StepElapsed is the time spent suspended on the current step.
	StepElapsed time.Duration
	// Awaiting is "fade", "join", "timer" or empty.
	Awaiting string
}

// run is one live execution of a tour.
type run struct {
	id     string
	status RunStatus
	step   int

	awaiting  awaitKind
	handles   []*fade.Handle
	remaining time.Duration

	elapsed     time.Duration
	stepElapsed time.Duration

	// touched lists every animator the run played, in first-play order.
	touched []*fade.Animator
	pulses  []*hoverPulse
	hovered []tour.ControlID
	focused []tour.InputID

	span trace.Span
}

func (r *run) touch(a *fade.Animator) {
	if !slices.Contains(r.touched, a) {
		r.touched = append(r.touched, a)
	}
}

func (r *run) joined() bool {
	for _, h := range r.handles {
		if !h.Done() {
			return false
		}
	}
	return true
}

func (r *run) clearAwait() {
	r.awaiting = awaitNone
	r.handles = nil
	r.remaining = 0
	r.stepElapsed = 0
}

func (r *run) snapshot(t *tour.Tour) Snapshot {
	return Snapshot{
		RunID:       r.id,
		Tour:        t.Name(),
		Status:      r.status,
		Step:        r.step,
		Steps:       t.Len(),
		Elapsed:     r.elapsed,
		StepElapsed: r.stepElapsed,
		Awaiting:    r.awaiting.String(),
	}
}
