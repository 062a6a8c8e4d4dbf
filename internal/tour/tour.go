package tour

import (
	"fmt"
	"time"

	apperrors "github.com/agbru/revealtour/internal/errors"
)

// Tour is an immutable, ordered list of steps. It is safe to share between
// orchestrators and goroutines.
type Tour struct {
	name  string
	steps []Step
}

// New validates steps and returns a tour holding a private copy of them.
// An empty step list is valid; a run over it completes immediately.
func New(name string, steps ...Step) (*Tour, error) {
	t := &Tour{name: name, steps: make([]Step, len(steps))}
	for i, s := range steps {
		t.steps[i] = s.clone()
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Name returns the tour's name.
func (t *Tour) Name() string { return t.name }

// Len returns the number of steps.
func (t *Tour) Len() int { return len(t.steps) }

// Step returns a copy of step i.
func (t *Tour) Step(i int) (Step, bool) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[i].clone(), true
}

// Steps returns a copy of every step.
func (t *Tour) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.clone()
	}
	return out
}

// AnimatorRefs lists every animator the tour references, in order of first
// appearance.
func (t *Tour) AnimatorRefs() []AnimatorID {
	seen := make(map[AnimatorID]struct{})
	var refs []AnimatorID
	for _, s := range t.steps {
		for _, f := range s.Fades {
			if _, ok := seen[f.Animator]; ok {
				continue
			}
			seen[f.Animator] = struct{}{}
			refs = append(refs, f.Animator)
		}
	}
	return refs
}

// ControlRefs lists every control named by a side effect, in order of first
// appearance.
func (t *Tour) ControlRefs() []ControlID {
	seen := make(map[ControlID]struct{})
	var refs []ControlID
	for _, s := range t.steps {
		if s.Kind != KindSideEffect {
			continue
		}
		for _, c := range s.Effect.Controls {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			refs = append(refs, c)
		}
	}
	return refs
}

// InputRefs lists every input named by a focus effect, in order of first
// appearance.
func (t *Tour) InputRefs() []InputID {
	seen := make(map[InputID]struct{})
	var refs []InputID
	for _, s := range t.steps {
		if s.Kind != KindSideEffect || s.Effect.Input == "" {
			continue
		}
		if _, ok := seen[s.Effect.Input]; ok {
			continue
		}
		seen[s.Effect.Input] = struct{}{}
		refs = append(refs, s.Effect.Input)
	}
	return refs
}

// Nominal returns the time a run takes when every reference resolves.
func (t *Tour) Nominal() time.Duration {
	var total time.Duration
	for _, s := range t.steps {
		total += s.Nominal()
	}
	return total
}

// Validate checks that every step is well formed.
func (t *Tour) Validate() error {
	if t.name == "" {
		return apperrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	for i, s := range t.steps {
		if err := validateStep(s); err != nil {
			err.Field = fmt.Sprintf("steps[%d]%s", i, err.Field)
			return *err
		}
	}
	return nil
}

func validateStep(s Step) *apperrors.ValidationError {
	fail := func(field, format string, args ...any) *apperrors.ValidationError {
		return &apperrors.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
	}

	switch s.Kind {
	case KindPlaySingle, KindPlayDetached:
		if len(s.Fades) != 1 {
			return fail(".fades", "%s step needs exactly one fade, got %d", s.Kind, len(s.Fades))
		}
	case KindPlayParallel:
	case KindWait:
		if s.Wait < 0 {
			return fail(".wait", "must not be negative")
		}
		return nil
	case KindSideEffect:
		return validateEffect(s.Effect, fail)
	default:
		return fail(".kind", "unknown step kind %d", int(s.Kind))
	}

	for j, f := range s.Fades {
		field := fmt.Sprintf(".fades[%d]", j)
		switch {
		case f.Animator == "":
			return fail(field+".animator", "must not be empty")
		case f.Duration < 0:
			return fail(field+".duration", "must not be negative")
		case f.Hold < 0:
			return fail(field+".hold", "must not be negative")
		}
	}
	return nil
}

func validateEffect(e Effect, fail func(string, string, ...any) *apperrors.ValidationError) *apperrors.ValidationError {
	switch e.Kind {
	case EffectBeginHoverPulse, EffectHoverOn, EffectHoverOff:
		if len(e.Controls) == 0 {
			return fail(".controls", "%s needs at least one control", e.Kind)
		}
		for j, c := range e.Controls {
			if c == "" {
				return fail(fmt.Sprintf(".controls[%d]", j), "must not be empty")
			}
		}
	case EffectFocusInput, EffectUnfocusInput:
		if e.Input == "" {
			return fail(".input", "%s needs an input", e.Kind)
		}
	case EffectEndHoverPulse:
	default:
		return fail(".effect", "unknown effect kind %d", int(e.Kind))
	}
	return nil
}
