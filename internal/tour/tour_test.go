package tour

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/revealtour/internal/errors"
)

func TestBuilder_BuildsStepsInOrder(t *testing.T) {
	t.Parallel()
	got, err := NewBuilder("intro").
		Play("a", time.Second, 3*time.Second).
		Wait(time.Second).
		Parallel(Fade{Animator: "b", Duration: time.Second}, Fade{Animator: "c", Duration: 2 * time.Second}).
		Detached("d", time.Second, 0).
		BeginHoverPulse("back", "help").
		EndHoverPulse().
		Focus("in").
		Unfocus("in").
		HoverOn("help").
		HoverOff("help").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []Step{
		PlaySingle("a", time.Second, 3*time.Second),
		Wait(time.Second),
		PlayParallel(Fade{Animator: "b", Duration: time.Second}, Fade{Animator: "c", Duration: 2 * time.Second}),
		PlayDetached("d", time.Second, 0),
		BeginHoverPulse("back", "help"),
		EndHoverPulse(),
		FocusInput("in"),
		UnfocusInput("in"),
		HoverOn("help"),
		HoverOff("help"),
	}
	if diff := cmp.Diff(want, got.Steps()); diff != "" {
		t.Errorf("Steps() mismatch (-want +got):\n%s", diff)
	}
	if got.Name() != "intro" || got.Len() != len(want) {
		t.Errorf("Name()=%q Len()=%d", got.Name(), got.Len())
	}
}

func TestTour_IsImmutable(t *testing.T) {
	t.Parallel()
	fades := []Fade{{Animator: "a", Duration: time.Second}}
	tr, err := New("t", PlayParallel(fades...))
	if err != nil {
		t.Fatal(err)
	}
	fades[0].Animator = "mutated"

	steps := tr.Steps()
	steps[0].Fades[0].Animator = "mutated"
	steps[0].Kind = KindWait

	s, ok := tr.Step(0)
	if !ok || s.Kind != KindPlayParallel || s.Fades[0].Animator != "a" {
		t.Errorf("tour changed through a returned copy: %+v", s)
	}
	if _, ok := tr.Step(1); ok {
		t.Error("Step(1) should be out of range")
	}
}

func TestTour_AnimatorRefsAndNominal(t *testing.T) {
	t.Parallel()
	tr := NewBuilder("t").
		Play("a", time.Second, 3*time.Second).
		Wait(time.Second).
		Play("b", time.Second, 2*time.Second).
		Parallel(Fade{Animator: "a", Duration: time.Second}, Fade{Animator: "c", Duration: 2 * time.Second}).
		Detached("d", 10*time.Second, 0).
		MustBuild()

	if diff := cmp.Diff([]AnimatorID{"a", "b", "c", "d"}, tr.AnimatorRefs()); diff != "" {
		t.Errorf("AnimatorRefs() mismatch (-want +got):\n%s", diff)
	}
	// 5 + 1 + 4 + max(2, 4) + 0
	if got, want := tr.Nominal(), 14*time.Second; got != want {
		t.Errorf("Nominal() = %v, want %v", got, want)
	}
}

func TestTour_ControlAndInputRefs(t *testing.T) {
	t.Parallel()
	tr := Default()

	wantControls := []ControlID{ControlBack, ControlHelp, ControlSave, ControlToggle}
	if diff := cmp.Diff(wantControls, tr.ControlRefs()); diff != "" {
		t.Errorf("ControlRefs() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]InputID{InputTutorial}, tr.InputRefs()); diff != "" {
		t.Errorf("InputRefs() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_EmptyTourIsValid(t *testing.T) {
	t.Parallel()
	tr, err := New("empty")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if tr.Len() != 0 || tr.Nominal() != 0 || len(tr.AnimatorRefs()) != 0 {
		t.Errorf("empty tour reports Len=%d Nominal=%v", tr.Len(), tr.Nominal())
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		tour  string
		steps []Step
		field string
	}{
		{"empty name", "", nil, "name"},
		{"empty animator", "t", []Step{PlaySingle("", time.Second, 0)}, "steps[0].fades[0].animator"},
		{"negative duration", "t", []Step{Wait(0), PlaySingle("a", -time.Second, 0)}, "steps[1].fades[0].duration"},
		{"negative hold", "t", []Step{PlayDetached("a", time.Second, -1)}, "steps[0].fades[0].hold"},
		{"negative wait", "t", []Step{Wait(-time.Second)}, "steps[0].wait"},
		{"parallel member", "t", []Step{PlayParallel(Fade{Animator: "a"}, Fade{})}, "steps[0].fades[1].animator"},
		{"single with two fades", "t", []Step{{Kind: KindPlaySingle, Fades: []Fade{{Animator: "a"}, {Animator: "b"}}}}, "steps[0].fades"},
		{"pulse without controls", "t", []Step{BeginHoverPulse()}, "steps[0].controls"},
		{"empty control", "t", []Step{HoverOn("help", "")}, "steps[0].controls[1]"},
		{"focus without input", "t", []Step{FocusInput("")}, "steps[0].input"},
		{"unknown effect", "t", []Step{{Kind: KindSideEffect}}, "steps[0].effect"},
		{"unknown kind", "t", []Step{{Kind: StepKind(42)}}, "steps[0].kind"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.tour, tt.steps...)
			var vErr apperrors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q (%v)", vErr.Field, tt.field, err)
			}
		})
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("MustBuild should panic on an invalid tour")
		}
	}()
	NewBuilder("t").Wait(-1).MustBuild()
}

func TestStep_Strings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		step Step
		want string
	}{
		{PlaySingle("arrow", time.Second, 3*time.Second), "play arrow 1s/3s"},
		{PlayParallel(Fade{Animator: "a", Duration: time.Second}, Fade{Animator: "b", Duration: 2 * time.Second}), "parallel a 1s/0s, b 2s/0s"},
		{PlayDetached("arrow", time.Second, 0), "detached arrow 1s/0s"},
		{Wait(1500 * time.Millisecond), "wait 1.5s"},
		{BeginHoverPulse("back", "help"), "begin-hover-pulse back,help"},
		{EndHoverPulse(), "end-hover-pulse"},
		{FocusInput("tutorialInput"), "focus-input tutorialInput"},
		{HoverOff("help"), "hover-off help"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStep_Nominal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		step Step
		want time.Duration
	}{
		{"single", PlaySingle("a", time.Second, 3*time.Second), 5 * time.Second},
		{"parallel takes the longest member", PlayParallel(Fade{Animator: "a", Duration: time.Second}, Fade{Animator: "b", Duration: 2 * time.Second}), 4 * time.Second},
		{"empty parallel", PlayParallel(), 0},
		{"detached", PlayDetached("a", time.Second, time.Second), 0},
		{"wait", Wait(time.Second), time.Second},
		{"effect", FocusInput("x"), 0},
	}
	for _, tt := range tests {
		if got := tt.step.Nominal(); got != tt.want {
			t.Errorf("%s: Nominal() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEffectKindRoundTrip(t *testing.T) {
	t.Parallel()
	for kind := EffectBeginHoverPulse; kind <= EffectHoverOff; kind++ {
		parsed, ok := ParseEffectKind(kind.String())
		if !ok || parsed != kind {
			t.Errorf("ParseEffectKind(%q) = %v, %v", kind.String(), parsed, ok)
		}
	}
	if _, ok := ParseEffectKind("shake"); ok {
		t.Error("unknown effect should not parse")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	tr := Default()

	if tr.Name() != "default" {
		t.Errorf("Name() = %q", tr.Name())
	}
	if got := tr.Len(); got != 34 {
		t.Errorf("Len() = %d, want 34", got)
	}
	if got := tr.Nominal(); got != 82*time.Second {
		t.Errorf("Nominal() = %v, want 82s", got)
	}

	refs := tr.AnimatorRefs()
	if len(refs) != 16 || refs[0] != "arrow" || refs[len(refs)-1] != "tutorialEnd" {
		t.Errorf("AnimatorRefs() = %v", refs)
	}

	first, _ := tr.Step(1)
	if first.Kind != KindPlayDetached || first.Fades[0].Animator != "arrow" {
		t.Errorf("step 1 should start the arrow detached, got %s", first)
	}
	steps := tr.Steps()
	var parallel Step
	for _, s := range steps {
		if s.Kind == KindPlayParallel {
			parallel = s
		}
	}
	if len(parallel.Fades) != 3 || parallel.Nominal() != 9*time.Second {
		t.Errorf("closing group = %s", parallel)
	}
}
