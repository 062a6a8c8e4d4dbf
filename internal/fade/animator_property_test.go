package fade

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func ms(v int64) time.Duration { return time.Duration(v) * time.Millisecond }

// TestAnimator_SequenceInvariants_PropertyBased drives random sequences to
// completion and checks the reveal curve and the completion time.
//
// For every duration d, hold h and tick dt the reveal fraction stays within
// [0,1], never decreases while fading in, never increases while fading out,
// touches 1 at least once, and the sequence finishes after at least 2d+h and
// at most 2d+h+2dt of advanced time.
func TestAnimator_SequenceInvariants_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("reveal curve and completion time", prop.ForAll(
		func(dMs, hMs, dtMs int64) bool {
			d, h, dt := ms(dMs), ms(hMs), ms(dtMs)
			a := New("p", ContinuousOnly, nil)
			handle := a.Play(d, h)

			var total time.Duration
			prev := a.RevealFraction()
			prevPhase := a.Phase()
			sawOne := false
			limit := int((2*d+h)/dt) + 4

			for i := 0; i < limit && a.IsFading(); i++ {
				a.Advance(dt)
				total += dt
				r := a.RevealFraction()
				if r < 0 || r > 1 {
					t.Logf("reveal %v out of range (d=%v h=%v dt=%v)", r, d, h, dt)
					return false
				}
				if r == 1 {
					sawOne = true
				}
				if a.Phase() == prevPhase {
					if prevPhase == FadingIn && r < prev {
						t.Logf("fade-in decreased %v -> %v", prev, r)
						return false
					}
					if prevPhase == FadingOut && r > prev {
						t.Logf("fade-out increased %v -> %v", prev, r)
						return false
					}
				}
				prev, prevPhase = r, a.Phase()
			}

			if a.IsFading() || !handle.Completed() {
				t.Logf("not finished after %d ticks (d=%v h=%v dt=%v)", limit, d, h, dt)
				return false
			}
			nominal := 2*d + h
			if total < nominal || total > nominal+2*dt {
				t.Logf("completed at %v, want within [%v, %v]", total, nominal, nominal+2*dt)
				return false
			}
			return sawOne && a.RevealFraction() == 0
		},
		gen.Int64Range(0, 3000),
		gen.Int64Range(0, 3000),
		gen.Int64Range(1, 500),
	))

	properties.TestingRun(t)
}

// TestAnimator_StopAndReplay_PropertyBased interrupts a sequence after a
// random number of ticks. Stop must always land on zero, and Play must always
// restart from zero regardless of how far the previous sequence got.
func TestAnimator_StopAndReplay_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Stop lands on zero", prop.ForAll(
		func(dMs, hMs int64, ticks int) bool {
			a := New("p", EnableAndAlpha, nil)
			h := a.Play(ms(dMs), ms(hMs))
			for i := 0; i < ticks; i++ {
				a.Advance(50 * time.Millisecond)
			}
			a.Stop()
			return a.RevealFraction() == 0 && a.Phase() == Idle && h.Done()
		},
		gen.Int64Range(0, 2000),
		gen.Int64Range(0, 2000),
		gen.IntRange(0, 120),
	))

	properties.Property("Play restarts from zero", prop.ForAll(
		func(dMs, hMs int64, ticks int) bool {
			a := New("p", ContinuousOnly, nil)
			first := a.Play(ms(dMs), ms(hMs))
			for i := 0; i < ticks; i++ {
				a.Advance(50 * time.Millisecond)
			}
			second := a.Play(ms(dMs), ms(hMs))
			s := a.State()
			return first.Done() && !second.Done() &&
				s.Phase == FadingIn && s.Reveal == 0 && s.Elapsed == 0 && s.Total == 0
		},
		gen.Int64Range(1, 2000),
		gen.Int64Range(0, 2000),
		gen.IntRange(0, 120),
	))

	properties.TestingRun(t)
}
