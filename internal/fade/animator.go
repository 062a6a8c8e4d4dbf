package fade

import "time"

// Element is the visual surface an animator drives. Implementations belong
// to the host (a terminal bar, a canvas group, a test recorder).
type Element interface {
	SetReveal(fraction float64)
	SetEnabled(enabled bool)
	SetInteractive(interactive bool)
	SetBlocksHits(blocks bool)
}

// Handle tracks one call to Play. It settles when the sequence finishes on
// its own or when a later Play or Stop supersedes it.
type Handle struct {
	animator  string
	settled   bool
	completed bool
}

// Done reports whether the sequence has settled. A nil handle is done.
func (h *Handle) Done() bool {
	return h == nil || h.settled
}

// Completed reports whether the sequence ran to its natural end.
func (h *Handle) Completed() bool {
	return h != nil && h.completed
}

// Animator is the name the handle's animator was registered under.
func (h *Handle) Animator() string {
	if h == nil {
		return ""
	}
	return h.animator
}

// Option configures an Animator.
type Option func(*Animator)

// WithObserver registers a callback invoked after every state change.
func WithObserver(fn func(id string, s State)) Option {
	return func(a *Animator) { a.observer = fn }
}

// Animator owns one element's reveal fraction. It is not safe for
// concurrent use; the owning scheduler calls it from a single goroutine.
type Animator struct {
	id       string
	repr     Representation
	element  Element
	state    State
	current  *Handle
	observer func(string, State)
}

// New creates an idle animator. element may be nil.
func New(id string, repr Representation, element Element, opts ...Option) *Animator {
	a := &Animator{id: id, repr: repr, element: element}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the animator's name.
func (a *Animator) ID() string { return a.id }

// Representation returns the configured visibility representation.
func (a *Animator) Representation() Representation { return a.repr }

// RevealFraction returns the current reveal value in [0,1].
func (a *Animator) RevealFraction() float64 { return a.state.Reveal }

// Phase returns the current phase.
func (a *Animator) Phase() Phase { return a.state.Phase }

// IsFading reports whether a sequence is in progress.
func (a *Animator) IsFading() bool { return a.state.Phase != Idle }

// State returns a copy of the current state.
func (a *Animator) State() State { return a.state }

// Play starts a fresh sequence: ramp up over duration, hold for hold, ramp
// down over duration. A running sequence is stopped first, so the new ramp
// always starts from zero. Negative values are treated as zero.
func (a *Animator) Play(duration, hold time.Duration) *Handle {
	if a.IsFading() {
		a.Stop()
	}
	if duration < 0 {
		duration = 0
	}
	if hold < 0 {
		hold = 0
	}

	h := &Handle{animator: a.id}
	a.current = h
	a.state = State{Phase: FadingIn, Duration: duration, Hold: hold}
	if a.element != nil {
		if a.repr == EnableAndAlpha {
			a.element.SetEnabled(true)
		}
	}
	a.publish()
	return h
}

// Stop forces the zero state immediately. It is a no-op when idle.
func (a *Animator) Stop() {
	if !a.IsFading() {
		return
	}
	a.zero()
	a.settle(false)
	a.publish()
}

// Reset forces the zero state whether or not a sequence is running.
func (a *Animator) Reset() {
	if a.IsFading() {
		a.Stop()
		return
	}
	a.zero()
	a.publish()
}

// Advance moves the running sequence forward by dt. Time left over when a
// phase ends carries into the next phase, except that the tick on which the
// fade-in ends always publishes a reveal of exactly 1.
func (a *Animator) Advance(dt time.Duration) {
	if !a.IsFading() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	a.state.Total += dt

	switch a.state.Phase {
	case FadingIn:
		a.state.Elapsed += dt
		if a.state.Duration > 0 && a.state.Elapsed < a.state.Duration {
			a.state.Reveal = clamp01(float64(a.state.Elapsed) / float64(a.state.Duration))
			break
		}
		overflow := a.state.Elapsed - a.state.Duration
		a.state.Reveal = 1
		a.state.Elapsed = overflow
		if a.state.Hold > 0 {
			a.state.Phase = Holding
		} else {
			a.state.Phase = FadingOut
		}
	case Holding:
		a.state.Elapsed += dt
		if a.state.Elapsed < a.state.Hold {
			break
		}
		overflow := a.state.Elapsed - a.state.Hold
		a.state.Phase = FadingOut
		a.state.Elapsed = 0
		a.fadeOut(overflow)
	case FadingOut:
		a.fadeOut(dt)
	}
	a.publish()
}

func (a *Animator) fadeOut(dt time.Duration) {
	a.state.Elapsed += dt
	if a.state.Duration > 0 && a.state.Elapsed < a.state.Duration {
		a.state.Reveal = 1 - clamp01(float64(a.state.Elapsed)/float64(a.state.Duration))
		return
	}
	a.state = State{Phase: Idle, Total: a.state.Total, Duration: a.state.Duration, Hold: a.state.Hold}
	if a.element != nil && a.repr == EnableAndAlpha {
		a.element.SetEnabled(false)
	}
	a.settle(true)
}

func (a *Animator) zero() {
	a.state = State{Phase: Idle}
	if a.element == nil {
		return
	}
	if a.repr == EnableAndAlpha {
		a.element.SetEnabled(false)
		a.element.SetInteractive(false)
		a.element.SetBlocksHits(false)
	}
}

func (a *Animator) settle(completed bool) {
	if a.current == nil {
		return
	}
	a.current.settled = true
	a.current.completed = completed
	a.current = nil
}

func (a *Animator) publish() {
	if a.element != nil {
		a.element.SetReveal(a.state.Reveal)
	}
	if a.observer != nil {
		a.observer(a.id, a.state)
	}
}
