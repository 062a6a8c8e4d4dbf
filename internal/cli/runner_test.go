package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/revealtour/internal/cli/mocks"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/stage"
	"github.com/agbru/revealtour/internal/tour"
)

func newTestRunner(t *testing.T, tr *tour.Tour, opts RunnerOptions, out io.Writer) (*Runner, *stage.Stage) {
	t.Helper()
	st := stage.New(tr, stage.WithContinuous("arrow"))
	o := orchestration.NewOrchestrator(tr, st.Resolver(), st)
	return NewRunner(o, st, opts, out, nil), st
}

func shortTour() *tour.Tour {
	return tour.NewBuilder("short").
		Play("a", 200*time.Millisecond, 100*time.Millisecond).
		Wait(100 * time.Millisecond).
		MustBuild()
}

func TestRunnerSimulatesDefaultTour(t *testing.T) {
	t.Parallel()
	r, st := newTestRunner(t, tour.Default(), RunnerOptions{Tick: 100 * time.Millisecond, Simulate: true}, io.Discard)

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Runs != 1 || res.Completed != 1 {
		t.Errorf("Runs=%d Completed=%d, want 1/1", res.Runs, res.Completed)
	}
	if res.Last.Status != orchestration.StatusCompleted {
		t.Errorf("last status = %s, want completed", res.Last.Status)
	}
	if res.Last.Elapsed != 82*time.Second {
		t.Errorf("tour clock = %s, want 82s", res.Last.Elapsed)
	}
	if st.ChromeActive() {
		t.Error("the runner should leave the chrome when it returns")
	}
	if st.ChromeEntries() != 1 {
		t.Errorf("chrome entered %d times, want 1", st.ChromeEntries())
	}
}

func TestRunnerLoopsUntilContextDone(t *testing.T) {
	t.Parallel()
	r, _ := newTestRunner(t, shortTour(), RunnerOptions{Tick: 100 * time.Millisecond, Simulate: true, Loop: true}, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res, err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if res.Completed < 1 {
		t.Errorf("Completed = %d, want at least one full run", res.Completed)
	}
	if res.Runs != res.Completed+1 {
		t.Errorf("Runs = %d, want Completed+1 = %d", res.Runs, res.Completed+1)
	}
	if res.Last.Status != orchestration.StatusCancelled {
		t.Errorf("last status = %s, want cancelled", res.Last.Status)
	}
}

func TestRunnerCancelledBeforeFirstTick(t *testing.T) {
	t.Parallel()
	r, st := newTestRunner(t, tour.Default(), RunnerOptions{Tick: 10 * time.Millisecond}, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Runs != 1 || res.Completed != 0 {
		t.Errorf("Runs=%d Completed=%d, want 1/0", res.Runs, res.Completed)
	}
	if res.Last.Status != orchestration.StatusCancelled {
		t.Errorf("last status = %s, want cancelled", res.Last.Status)
	}
	if st.ChromeActive() {
		t.Error("cancellation should leave the chrome")
	}
	for _, p := range st.Panels() {
		if p.Reveal != 0 {
			t.Errorf("panel %s left at reveal %.2f after cancellation", p.ID, p.Reveal)
		}
	}
}

func TestRunnerRealTime(t *testing.T) {
	t.Parallel()
	r, _ := newTestRunner(t, shortTour(), RunnerOptions{Tick: 2 * time.Millisecond, Speed: 20}, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Last.Status != orchestration.StatusCompleted {
		t.Errorf("last status = %s, want completed", res.Last.Status)
	}
	if res.Last.Elapsed < 600*time.Millisecond {
		t.Errorf("tour clock = %s, want at least the nominal 600ms", res.Last.Elapsed)
	}
}

// TestRunnerShowsProgress swaps the package-level spinner factory, so it
// must not run in parallel.
func TestRunnerShowsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	mock.EXPECT().Start().Times(1)
	mock.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()
	mock.EXPECT().Stop().Times(1)

	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mock }
	defer func() { newSpinner = orig }()

	var out bytes.Buffer
	r, _ := newTestRunner(t, tour.Default(), RunnerOptions{Tick: 100 * time.Millisecond, Simulate: true, ShowProgress: true}, &out)
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"1:22.0", "100.0%", "ETA: done", "step 34/34"} {
		if !strings.Contains(got, want) {
			t.Errorf("final progress line %q does not contain %q", got, want)
		}
	}
}
