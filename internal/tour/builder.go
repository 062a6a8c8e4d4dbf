package tour

import "time"

// Builder assembles a tour step by step.
//
//	t, err := tour.NewBuilder("intro").
//		Play("arrow", time.Second, 3*time.Second).
//		Wait(time.Second).
//		Build()
type Builder struct {
	name  string
	steps []Step
}

// NewBuilder starts a tour named name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Step appends an arbitrary step.
func (b *Builder) Step(s Step) *Builder {
	b.steps = append(b.steps, s)
	return b
}

// Play appends a PlaySingle step.
func (b *Builder) Play(animator AnimatorID, duration, hold time.Duration) *Builder {
	return b.Step(PlaySingle(animator, duration, hold))
}

// Parallel appends a PlayParallel step.
func (b *Builder) Parallel(fades ...Fade) *Builder {
	return b.Step(PlayParallel(fades...))
}

// Detached appends a PlayDetached step.
func (b *Builder) Detached(animator AnimatorID, duration, hold time.Duration) *Builder {
	return b.Step(PlayDetached(animator, duration, hold))
}

// Wait appends a Wait step.
func (b *Builder) Wait(d time.Duration) *Builder {
	return b.Step(Wait(d))
}

// BeginHoverPulse appends a BeginHoverPulse side effect.
func (b *Builder) BeginHoverPulse(controls ...ControlID) *Builder {
	return b.Step(BeginHoverPulse(controls...))
}

// EndHoverPulse appends an EndHoverPulse side effect.
func (b *Builder) EndHoverPulse() *Builder {
	return b.Step(EndHoverPulse())
}

// Focus appends a FocusInput side effect.
func (b *Builder) Focus(input InputID) *Builder {
	return b.Step(FocusInput(input))
}

// Unfocus appends an UnfocusInput side effect.
func (b *Builder) Unfocus(input InputID) *Builder {
	return b.Step(UnfocusInput(input))
}

// HoverOn appends a HoverOn side effect.
func (b *Builder) HoverOn(controls ...ControlID) *Builder {
	return b.Step(HoverOn(controls...))
}

// HoverOff appends a HoverOff side effect.
func (b *Builder) HoverOff(controls ...ControlID) *Builder {
	return b.Step(HoverOff(controls...))
}

// Build validates the accumulated steps and returns the tour.
func (b *Builder) Build() (*Tour, error) {
	return New(b.name, b.steps...)
}

// MustBuild is like Build but panics on an invalid tour. It is meant for
// tours written in code.
func (b *Builder) MustBuild() *Tour {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
