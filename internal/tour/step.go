package tour

import (
	"fmt"
	"strings"
	"time"
)

// AnimatorID names a fade animator.
type AnimatorID string

// ControlID names a control that can receive a simulated hover.
type ControlID string

// InputID names a text input that can receive focus.
type InputID string

// StepKind discriminates the Step variants.
type StepKind int

const (
	// KindPlaySingle plays one fade and waits for it to finish.
	KindPlaySingle StepKind = iota
	// KindPlayParallel plays several fades and waits for all of them.
	KindPlayParallel
	// KindPlayDetached starts a fade without waiting for it.
	KindPlayDetached
	// KindWait suspends for a fixed duration.
	KindWait
	// KindSideEffect runs a side effect synchronously.
	KindSideEffect
)

// String returns the configuration name of the kind.
func (k StepKind) String() string {
	switch k {
	case KindPlaySingle:
		return "play"
	case KindPlayParallel:
		return "parallel"
	case KindPlayDetached:
		return "detached"
	case KindWait:
		return "wait"
	case KindSideEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// EffectKind discriminates side effects.
type EffectKind int

const (
	EffectBeginHoverPulse EffectKind = iota + 1
	EffectEndHoverPulse
	EffectFocusInput
	EffectUnfocusInput
	EffectHoverOn
	EffectHoverOff
)

var effectNames = map[EffectKind]string{
	EffectBeginHoverPulse: "begin-hover-pulse",
	EffectEndHoverPulse:   "end-hover-pulse",
	EffectFocusInput:      "focus-input",
	EffectUnfocusInput:    "unfocus-input",
	EffectHoverOn:         "hover-on",
	EffectHoverOff:        "hover-off",
}

// String returns the configuration name of the effect.
func (k EffectKind) String() string {
	if name, ok := effectNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEffectKind maps a configuration name to an EffectKind.
func ParseEffectKind(s string) (EffectKind, bool) {
	for k, name := range effectNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Fade is one animator play request: ramp up over Duration, hold for Hold,
// ramp down over Duration.
type Fade struct {
	Animator AnimatorID
	Duration time.Duration
	Hold     time.Duration
}

// Nominal returns the full length of the fade sequence.
func (f Fade) Nominal() time.Duration {
	return 2*nonNegative(f.Duration) + nonNegative(f.Hold)
}

// Effect is the payload of a side-effect step. Controls is used by the hover
// effects, Input by the focus effects.
type Effect struct {
	Kind     EffectKind
	Controls []ControlID
	Input    InputID
}

// Step is one unit of a tour. Only the fields relevant to Kind are set:
// Fades for the play kinds (exactly one for single and detached), Wait for
// KindWait and Effect for KindSideEffect.
type Step struct {
	Kind   StepKind
	Fades  []Fade
	Wait   time.Duration
	Effect Effect
}

// PlaySingle returns a step that plays one fade and waits for it.
func PlaySingle(animator AnimatorID, duration, hold time.Duration) Step {
	return Step{Kind: KindPlaySingle, Fades: []Fade{{Animator: animator, Duration: duration, Hold: hold}}}
}

// PlayParallel returns a step that plays every fade at once and joins them.
func PlayParallel(fades ...Fade) Step {
	return Step{Kind: KindPlayParallel, Fades: append([]Fade(nil), fades...)}
}

// PlayDetached returns a step that starts a fade and moves on immediately.
func PlayDetached(animator AnimatorID, duration, hold time.Duration) Step {
	return Step{Kind: KindPlayDetached, Fades: []Fade{{Animator: animator, Duration: duration, Hold: hold}}}
}

// Wait returns a step that suspends for d.
func Wait(d time.Duration) Step {
	return Step{Kind: KindWait, Wait: d}
}

// BeginHoverPulse returns a step that starts pulsing the simulated hover of controls.
func BeginHoverPulse(controls ...ControlID) Step {
	return effect(EffectBeginHoverPulse, controls, "")
}

// EndHoverPulse returns a step that stops every hover pulse of the run.
func EndHoverPulse() Step {
	return effect(EffectEndHoverPulse, nil, "")
}

// FocusInput returns a step that focuses input.
func FocusInput(input InputID) Step {
	return effect(EffectFocusInput, nil, input)
}

// UnfocusInput returns a step that removes focus from input.
func UnfocusInput(input InputID) Step {
	return effect(EffectUnfocusInput, nil, input)
}

// HoverOn returns a step that holds the simulated hover on controls.
func HoverOn(controls ...ControlID) Step {
	return effect(EffectHoverOn, controls, "")
}

// HoverOff returns a step that releases a static hover on controls.
func HoverOff(controls ...ControlID) Step {
	return effect(EffectHoverOff, controls, "")
}

func effect(kind EffectKind, controls []ControlID, input InputID) Step {
	return Step{Kind: KindSideEffect, Effect: Effect{
		Kind:     kind,
		Controls: append([]ControlID(nil), controls...),
		Input:    input,
	}}
}

// Nominal returns the time the step suspends a run for when every
// reference resolves. Detached fades and side effects take no time.
func (s Step) Nominal() time.Duration {
	switch s.Kind {
	case KindPlaySingle, KindPlayParallel:
		var longest time.Duration
		for _, f := range s.Fades {
			longest = max(longest, f.Nominal())
		}
		return longest
	case KindWait:
		return nonNegative(s.Wait)
	default:
		return 0
	}
}

// String renders the step for logs, e.g. "play arrow 1s/3s".
func (s Step) String() string {
	switch s.Kind {
	case KindPlaySingle, KindPlayDetached, KindPlayParallel:
		parts := make([]string, len(s.Fades))
		for i, f := range s.Fades {
			parts[i] = fmt.Sprintf("%s %s/%s", f.Animator, f.Duration, f.Hold)
		}
		return s.Kind.String() + " " + strings.Join(parts, ", ")
	case KindWait:
		return "wait " + s.Wait.String()
	case KindSideEffect:
		switch {
		case s.Effect.Input != "":
			return fmt.Sprintf("%s %s", s.Effect.Kind, s.Effect.Input)
		case len(s.Effect.Controls) > 0:
			ids := make([]string, len(s.Effect.Controls))
			for i, c := range s.Effect.Controls {
				ids[i] = string(c)
			}
			return fmt.Sprintf("%s %s", s.Effect.Kind, strings.Join(ids, ","))
		default:
			return s.Effect.Kind.String()
		}
	default:
		return "unknown"
	}
}

func (s Step) clone() Step {
	s.Fades = append([]Fade(nil), s.Fades...)
	s.Effect.Controls = append([]ControlID(nil), s.Effect.Controls...)
	return s
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
