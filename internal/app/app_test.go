package app

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/revealtour/internal/errors"
	"github.com/agbru/revealtour/internal/tour"
)

const introTour = `
name: intro
steps:
  - play: {animator: arrow, duration: 100ms, hold: 100ms}
  - effect: hover-on
    controls: [help]
  - wait: 100ms
  - effect: hover-off
    controls: [help]
`

func shortTour() *tour.Tour {
	return tour.NewBuilder("short").
		Play("a", 100*time.Millisecond, 0).
		Wait(100 * time.Millisecond).
		MustBuild()
}

func newApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var stderr bytes.Buffer
	a, err := New(append([]string{"revealtour"}, args...), &stderr)
	if err != nil {
		t.Fatalf("New(%v): %v\n%s", args, err, stderr.String())
	}
	return a, &stderr
}

func TestNew_DefaultTour(t *testing.T) {
	a, _ := newApp(t)
	if a.Tour.Name() != tour.Default().Name() || a.Tour.Len() != tour.Default().Len() {
		t.Errorf("expected the built-in tour, got %q with %d steps", a.Tour.Name(), a.Tour.Len())
	}
}

func TestNew_TourFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intro.yaml")
	if err := os.WriteFile(path, []byte(introTour), 0o600); err != nil {
		t.Fatal(err)
	}
	a, _ := newApp(t, "--tour", path)
	if a.Tour.Name() != "intro" || a.Tour.Len() != 4 {
		t.Errorf("loaded %q with %d steps, want intro with 4", a.Tour.Name(), a.Tour.Len())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"missing tour file", []string{"--tour", filepath.Join(t.TempDir(), "none.yaml")}, apperrors.ExitErrorTour},
		{"invalid flag value", []string{"--speed", "-1"}, apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := New(append([]string{"revealtour"}, tt.args...), &stderr)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := apperrors.ExitCodeFor(err); got != tt.wantCode {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", err, got, tt.wantCode)
			}
			if !strings.Contains(stderr.String(), "Error:") {
				t.Errorf("stderr should report the error, got %q", stderr.String())
			}
		})
	}
}

func TestNew_Help(t *testing.T) {
	var stderr bytes.Buffer
	_, err := New([]string{"revealtour", "-h"}, &stderr)
	if !IsHelpError(err) {
		t.Fatalf("expected a help error, got %v", err)
	}
	if IsHelpError(errors.New("other")) {
		t.Error("IsHelpError should reject other errors")
	}
}

func TestRun_SimulatedDefaultTour(t *testing.T) {
	a, _ := newApp(t, "--simulate", "--tick", "100ms", "--no-color")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success\n%s", code, out.String())
	}
	for _, want := range []string{"Tour default: 34 steps", "Clock: simulated", `Tour "default" completed after 1:22.0 (1/1 runs completed`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestRun_QuietPrintsOnlySummary(t *testing.T) {
	a, _ := newApp(t, "--simulate", "-q", "--no-color", "--missing", "help")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "completed") {
		t.Errorf("quiet output = %q, want a single summary line", out.String())
	}
}

func TestRun_VerbosePrintsEvents(t *testing.T) {
	a, _ := newApp(t, "--simulate", "--tick", "100ms", "-v", "--no-color")
	a.Tour = shortTour()

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	for _, want := range []string{`begin tour "short"`, "step 1/2", "step 2/2", "completed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	a, stderr := newApp(t, "-q", "--no-color")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if code := a.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
	if !strings.Contains(stderr.String(), "Tour interrupted") {
		t.Errorf("stderr = %q, want an interruption notice", stderr.String())
	}
	if !strings.Contains(out.String(), "cancelled") {
		t.Errorf("summary = %q, want a cancelled run", out.String())
	}
}

func TestRun_LoopEndsOnTimeout(t *testing.T) {
	a, _ := newApp(t, "--simulate", "--loop", "--timeout", "50ms", "-q", "--no-color")
	a.Tour = shortTour()

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success for a timed loop", code)
	}
}

func TestRun_MetricsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	a, stderr := newApp(t, "--simulate", "-q", "--no-color", "--metrics-addr", ln.Addr().String())
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(stderr.String(), "metrics listener") {
		t.Errorf("stderr = %q, want the listener error", stderr.String())
	}
}

func TestRun_Completion(t *testing.T) {
	a, _ := newApp(t, "--completion", "fish")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if !strings.Contains(out.String(), "complete -c revealtour") || !strings.Contains(out.String(), "tutorialInput") {
		t.Errorf("completion script lacks flags or tour ids:\n%s", out.String())
	}
}

func TestTourRefs(t *testing.T) {
	refs := tourRefs(tour.Default())
	if len(refs) != 16+4+1 {
		t.Errorf("got %d refs, want 21: %v", len(refs), refs)
	}
	if refs[0] != "arrow" || refs[len(refs)-1] != "tutorialInput" {
		t.Errorf("refs should list animators first and inputs last: %v", refs)
	}
	if tourRefs(nil) != nil {
		t.Error("a nil tour has no refs")
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-q", "-V"}, true},
		{[]string{"-version"}, true},
		{[]string{"--", "--version"}, false},
		{[]string{"-v"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "revealtour "+Version) {
		t.Errorf("PrintVersion() = %q", out.String())
	}
}
