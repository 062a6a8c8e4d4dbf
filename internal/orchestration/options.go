package orchestration

import (
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/revealtour/internal/logging"
	"github.com/agbru/revealtour/internal/tour"
)

// tracerName is the instrumentation scope of the run spans.
const tracerName = "github.com/agbru/revealtour/internal/orchestration"

// Hooks are optional lifecycle callbacks. They run synchronously; Begin,
// Exit and Reset called from inside a hook are queued and applied once the
// current operation returns.
type Hooks struct {
	OnRunStart  func(Snapshot)
	OnStepStart func(Snapshot, tour.Step)
	OnStepEnd   func(Snapshot, tour.Step)
	OnRunEnd    func(Snapshot)
	// OnSkip reports a reference that could not be resolved. The error is an
	// apperrors.UnavailableError.
	OnSkip func(Snapshot, error)
}

// Recorder receives counters about runs. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	RunStarted()
	RunEnded(status string, elapsed time.Duration)
	StepCompleted(kind string)
	ReferenceSkipped(kind string)
	ActiveFades(n int)
}

type nopRecorder struct{}

func (nopRecorder) RunStarted()                    {}
func (nopRecorder) RunEnded(string, time.Duration) {}
func (nopRecorder) StepCompleted(string)           {}
func (nopRecorder) ReferenceSkipped(string)        {}
func (nopRecorder) ActiveFades(int)                {}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for run and step lifecycle messages.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithHooks installs lifecycle callbacks.
func WithHooks(h Hooks) Option {
	return func(o *Orchestrator) { o.hooks = h }
}

// WithHoverPeriod sets the on and off half-cycle of hover pulses. A
// non-positive period keeps pulsed controls hovered until the pulse ends.
func WithHoverPeriod(d time.Duration) Option {
	return func(o *Orchestrator) { o.hoverPeriod = d }
}

// WithTracer overrides the tracer used for run spans. By default the global
// tracer provider is used.
func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithIDGenerator overrides how run IDs are produced.
func WithIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func defaultOptions(o *Orchestrator) {
	o.logger = logging.NewNopLogger()
	o.recorder = nopRecorder{}
	o.hoverPeriod = DefaultHoverPeriod
	o.tracer = otel.Tracer(tracerName)
	o.newID = uuid.NewString
}
