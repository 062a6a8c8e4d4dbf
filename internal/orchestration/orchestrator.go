package orchestration

import (
	"slices"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/revealtour/internal/clock"
	apperrors "github.com/agbru/revealtour/internal/errors"
	"github.com/agbru/revealtour/internal/fade"
	"github.com/agbru/revealtour/internal/logging"
	"github.com/agbru/revealtour/internal/tour"
)

type command int

const (
	cmdBegin command = iota + 1
	cmdExit
	cmdReset
)

// Orchestrator drives one Run of a tour at a time. It is not safe for
// concurrent use: hosts call every method from the goroutine that ticks it.
type Orchestrator struct {
	tour         *tour.Tour
	animators    AnimatorResolver
	presentation PresentationContext

	logger      logging.Logger
	recorder    Recorder
	hooks       Hooks
	hoverPeriod time.Duration
	tracer      trace.Tracer
	newID       func() string

	// run is the current Run, if any. It stays set after natural completion
	// so its detached fades can be stopped by a later Exit or Begin.
	run *run
	// last is the most recent Run, kept for Status and Snapshot.
	last *run

	chromeActive bool
	pendingBegin bool

	// inflight holds every animator played by any Run that may still be
	// fading. Detached fades keep advancing after their Run completes.
	inflight []*fade.Animator

	busy     bool
	deferred []command
}

// NewOrchestrator returns an orchestrator for t. A nil tour behaves like an
// empty one, and a nil presentation discards every callback.
func NewOrchestrator(t *tour.Tour, animators AnimatorResolver, presentation PresentationContext, opts ...Option) *Orchestrator {
	if t == nil {
		t, _ = tour.New("empty")
	}
	if animators == nil {
		animators = RegistryResolver(nil)
	}
	if presentation == nil {
		presentation = nopPresentation{}
	}
	o := &Orchestrator{tour: t, animators: animators, presentation: presentation}
	defaultOptions(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Tour returns the tour being orchestrated.
func (o *Orchestrator) Tour() *tour.Tour { return o.tour }

// Begin retires any current Run, enters the tour chrome, resets every
// animator the tour references and starts a new Run at step 0. Steps that
// do not suspend execute before Begin returns.
func (o *Orchestrator) Begin() { o.exec(cmdBegin) }

// Exit retires the current Run and leaves the tour chrome. It is a no-op
// when there is neither a Run nor active chrome.
func (o *Orchestrator) Exit() { o.exec(cmdExit) }

// Reset retires the current Run now and begins a new one on the next Tick,
// giving the retirement one quantum to settle. The chrome stays up.
func (o *Orchestrator) Reset() { o.exec(cmdReset) }

// IsRunning reports whether a Run exists and has neither completed nor been
// cancelled.
func (o *Orchestrator) IsRunning() bool {
	return o.run != nil && o.run.status == StatusRunning
}

// Status returns the status of the most recent Run.
func (o *Orchestrator) Status() RunStatus {
	if o.last == nil {
		return StatusNotStarted
	}
	return o.last.status
}

// CurrentStep returns the index of the step the running Run is on, or -1.
func (o *Orchestrator) CurrentStep() int {
	if !o.IsRunning() {
		return -1
	}
	return o.run.step
}

// RunID returns the ID of the current Run, or "" when there is none.
func (o *Orchestrator) RunID() string {
	if o.run == nil {
		return ""
	}
	return o.run.id
}

// Snapshot describes the most recent Run.
func (o *Orchestrator) Snapshot() Snapshot {
	if o.last == nil {
		return Snapshot{Tour: o.tour.Name(), Steps: o.tour.Len()}
	}
	return o.last.snapshot(o.tour)
}

// PendingBegin reports whether a Reset is waiting for the next Tick.
func (o *Orchestrator) PendingBegin() bool { return o.pendingBegin }

// ChromeActive reports whether the tour chrome is shown.
func (o *Orchestrator) ChromeActive() bool { return o.chromeActive }

// TickClock advances by the quantum c reports.
func (o *Orchestrator) TickClock(c clock.Clock) { o.Tick(c.Elapsed()) }

// Tick advances every in-flight fade, every hover pulse and the current
// Run's suspension by dt. When the suspension ends, following steps execute
// until one suspends again; a newly started step does not consume any of dt.
// A Tick following Reset only begins the new Run.
func (o *Orchestrator) Tick(dt time.Duration) {
	if o.busy {
		o.logger.Warn("ignoring re-entrant tick")
		return
	}
	if dt < 0 {
		dt = 0
	}
	o.busy = true
	o.tick(dt)
	o.drain()
}

func (o *Orchestrator) exec(c command) {
	if o.busy {
		o.deferred = append(o.deferred, c)
		return
	}
	o.busy = true
	o.apply(c)
	o.drain()
}

func (o *Orchestrator) drain() {
	for len(o.deferred) > 0 {
		c := o.deferred[0]
		o.deferred = o.deferred[1:]
		o.apply(c)
	}
	o.busy = false
}

func (o *Orchestrator) apply(c command) {
	switch c {
	case cmdBegin:
		o.begin()
	case cmdExit:
		o.exit()
	case cmdReset:
		o.reset()
	}
}

func (o *Orchestrator) tick(dt time.Duration) {
	if o.pendingBegin {
		o.begin()
		return
	}

	o.advanceInflight(dt)

	r := o.run
	if r == nil || r.status != StatusRunning {
		return
	}
	r.elapsed += dt
	r.stepElapsed += dt
	for _, p := range r.pulses {
		p.advance(dt)
	}
	o.resume(r, dt)
}

func (o *Orchestrator) begin() {
	o.pendingBegin = false
	o.retire()

	if !o.chromeActive {
		o.presentation.EnterTourChrome()
		o.chromeActive = true
	}
	for _, id := range o.tour.AnimatorRefs() {
		if a, ok := o.animators.Animator(id); ok && a != nil {
			a.Reset()
		}
	}
	o.pruneInflight()

	r := &run{id: o.newID(), status: StatusRunning}
	_, r.span = o.startSpan(r)
	o.run, o.last = r, r

	o.recorder.RunStarted()
	o.logger.Info("tour run started",
		logging.String("tour", o.tour.Name()),
		logging.String("run_id", r.id),
		logging.Int("steps", o.tour.Len()))
	if o.hooks.OnRunStart != nil {
		o.hooks.OnRunStart(r.snapshot(o.tour))
	}
	o.process(r)
}

func (o *Orchestrator) exit() {
	o.pendingBegin = false
	o.retire()
	if o.chromeActive {
		o.presentation.ExitTourChrome()
		o.chromeActive = false
	}
}

func (o *Orchestrator) reset() {
	o.retire()
	o.pendingBegin = true
}

// retire drops the current Run. A running Run is cancelled: every animator
// it touched is forced to zero, then its pulses, hovers and focus are
// released. Detached fades of a completed Run are stopped as well.
func (o *Orchestrator) retire() {
	r := o.run
	if r == nil {
		return
	}
	o.run = nil

	for _, a := range r.touched {
		a.Stop()
	}
	o.pruneInflight()

	if r.status != StatusRunning {
		return
	}
	o.release(r)
	r.clearAwait()
	r.status = StatusCancelled
	o.logger.Info("tour run cancelled",
		logging.String("run_id", r.id),
		logging.Int("step", r.step),
		logging.Duration("elapsed", r.elapsed))
	o.finish(r)
}

// process executes steps from the Run's current index until one suspends
// or the tour ends.
func (o *Orchestrator) process(r *run) {
	for r.status == StatusRunning {
		step, ok := o.tour.Step(r.step)
		if !ok {
			o.complete(r)
			return
		}
		o.stepStarted(r, step)
		if o.execute(r, step) {
			return
		}
		o.stepEnded(r, step)
	}
}

// resume checks the Run's suspension and continues processing once it has
// ended.
func (o *Orchestrator) resume(r *run, dt time.Duration) {
	switch r.awaiting {
	case awaitFade, awaitJoin:
		if !r.joined() {
			return
		}
	case awaitTimer:
		r.remaining -= dt
		if r.remaining > 0 {
			return
		}
	}
	step, _ := o.tour.Step(r.step)
	r.clearAwait()
	o.stepEnded(r, step)
	o.process(r)
}

// execute runs one step and reports whether the Run is now suspended.
func (o *Orchestrator) execute(r *run, step tour.Step) bool {
	switch step.Kind {
	case tour.KindPlaySingle:
		a, ok := o.resolve(r, step.Fades[0].Animator)
		if !ok {
			return false
		}
		r.handles = []*fade.Handle{o.play(r, a, step.Fades[0])}
		r.awaiting = awaitFade
		return true

	case tour.KindPlayParallel:
		var handles []*fade.Handle
		for _, f := range step.Fades {
			if a, ok := o.resolve(r, f.Animator); ok {
				handles = append(handles, o.play(r, a, f))
			}
		}
		if len(handles) == 0 {
			return false
		}
		r.handles = handles
		r.awaiting = awaitJoin
		return true

	case tour.KindPlayDetached:
		if a, ok := o.resolve(r, step.Fades[0].Animator); ok {
			o.play(r, a, step.Fades[0])
		}
		return false

	case tour.KindWait:
		if step.Wait <= 0 {
			return false
		}
		r.remaining = step.Wait
		r.awaiting = awaitTimer
		return true

	case tour.KindSideEffect:
		o.applyEffect(r, step.Effect)
		return false
	}
	return false
}

func (o *Orchestrator) play(r *run, a *fade.Animator, f tour.Fade) *fade.Handle {
	h := a.Play(f.Duration, f.Hold)
	r.touch(a)
	if !slices.Contains(o.inflight, a) {
		o.inflight = append(o.inflight, a)
	}
	return h
}

func (o *Orchestrator) applyEffect(r *run, e tour.Effect) {
	switch e.Kind {
	case tour.EffectBeginHoverPulse:
		controls := o.availableControls(r, e.Controls)
		if len(controls) == 0 {
			return
		}
		r.pulses = append(r.pulses, startHoverPulse(controls, o.hoverPeriod, o.presentation.SetHoverSimulated))

	case tour.EffectEndHoverPulse:
		for _, p := range r.pulses {
			p.stop()
		}
		r.pulses = nil

	case tour.EffectHoverOn:
		for _, c := range o.availableControls(r, e.Controls) {
			o.presentation.SetHoverSimulated(c, true)
			if !slices.Contains(r.hovered, c) {
				r.hovered = append(r.hovered, c)
			}
		}

	case tour.EffectHoverOff:
		for _, c := range o.availableControls(r, e.Controls) {
			o.presentation.SetHoverSimulated(c, false)
			r.hovered = slices.DeleteFunc(r.hovered, func(h tour.ControlID) bool { return h == c })
		}

	case tour.EffectFocusInput:
		if !o.inputAvailable(r, e.Input) {
			return
		}
		o.presentation.SetFocused(e.Input, true)
		if !slices.Contains(r.focused, e.Input) {
			r.focused = append(r.focused, e.Input)
		}

	case tour.EffectUnfocusInput:
		if !o.inputAvailable(r, e.Input) {
			return
		}
		o.presentation.SetFocused(e.Input, false)
		r.focused = slices.DeleteFunc(r.focused, func(in tour.InputID) bool { return in == e.Input })
	}
}

// release stops the Run's pulses and undoes its static hovers and focus.
func (o *Orchestrator) release(r *run) {
	for _, p := range r.pulses {
		p.stop()
	}
	r.pulses = nil
	for _, c := range r.hovered {
		o.presentation.SetHoverSimulated(c, false)
	}
	r.hovered = nil
	for _, in := range r.focused {
		o.presentation.SetFocused(in, false)
	}
	r.focused = nil
}

func (o *Orchestrator) complete(r *run) {
	o.release(r)
	r.clearAwait()
	r.status = StatusCompleted
	o.logger.Info("tour run completed",
		logging.String("run_id", r.id),
		logging.Duration("elapsed", r.elapsed))
	o.finish(r)
}

func (o *Orchestrator) finish(r *run) {
	o.recorder.RunEnded(r.status.String(), r.elapsed)
	o.endSpan(r)
	if o.hooks.OnRunEnd != nil {
		o.hooks.OnRunEnd(r.snapshot(o.tour))
	}
}

func (o *Orchestrator) stepStarted(r *run, step tour.Step) {
	o.logger.Debug("tour step started",
		logging.String("run_id", r.id),
		logging.Int("step", r.step),
		logging.String("kind", step.Kind.String()),
		logging.String("detail", step.String()))
	o.stepEvent(r, "step.start", step)
	if o.hooks.OnStepStart != nil {
		o.hooks.OnStepStart(r.snapshot(o.tour), step)
	}
}

func (o *Orchestrator) stepEnded(r *run, step tour.Step) {
	o.recorder.StepCompleted(step.Kind.String())
	o.stepEvent(r, "step.end", step)
	if o.hooks.OnStepEnd != nil {
		o.hooks.OnStepEnd(r.snapshot(o.tour), step)
	}
	r.step++
	r.stepElapsed = 0
}

func (o *Orchestrator) resolve(r *run, id tour.AnimatorID) (*fade.Animator, bool) {
	a, ok := o.animators.Animator(id)
	if ok && a != nil {
		return a, true
	}
	o.skip(r, apperrors.UnavailableError{Kind: apperrors.RefAnimator, ID: string(id)})
	return nil, false
}

func (o *Orchestrator) availableControls(r *run, controls []tour.ControlID) []tour.ControlID {
	checker, ok := o.presentation.(ControlChecker)
	if !ok {
		return controls
	}
	available := make([]tour.ControlID, 0, len(controls))
	for _, c := range controls {
		if checker.ControlAvailable(c) {
			available = append(available, c)
			continue
		}
		o.skip(r, apperrors.UnavailableError{Kind: apperrors.RefControl, ID: string(c)})
	}
	return available
}

func (o *Orchestrator) inputAvailable(r *run, in tour.InputID) bool {
	checker, ok := o.presentation.(InputChecker)
	if !ok || checker.InputAvailable(in) {
		return true
	}
	o.skip(r, apperrors.UnavailableError{Kind: apperrors.RefInput, ID: string(in)})
	return false
}

func (o *Orchestrator) skip(r *run, err apperrors.UnavailableError) {
	o.recorder.ReferenceSkipped(string(err.Kind))
	o.logger.Debug("skipping unavailable reference",
		logging.String("run_id", r.id),
		logging.Int("step", r.step),
		logging.Err(err))
	if o.hooks.OnSkip != nil {
		o.hooks.OnSkip(r.snapshot(o.tour), err)
	}
}

func (o *Orchestrator) advanceInflight(dt time.Duration) {
	if len(o.inflight) == 0 {
		return
	}
	// Advance may reach host code through element callbacks; iterate over a
	// copy so the list can change underneath.
	for _, a := range slices.Clone(o.inflight) {
		a.Advance(dt)
	}
	o.pruneInflight()
}

func (o *Orchestrator) pruneInflight() {
	o.inflight = slices.DeleteFunc(o.inflight, func(a *fade.Animator) bool { return !a.IsFading() })
	o.recorder.ActiveFades(len(o.inflight))
}

type nopPresentation struct{}

func (nopPresentation) EnterTourChrome()                       {}
func (nopPresentation) ExitTourChrome()                        {}
func (nopPresentation) SetHoverSimulated(tour.ControlID, bool) {}
func (nopPresentation) SetFocused(tour.InputID, bool)          {}
