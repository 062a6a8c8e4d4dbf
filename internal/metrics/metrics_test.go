package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/revealtour/internal/orchestration"
)

var _ orchestration.Recorder = (*Metrics)(nil)

func TestMetricsRecorder(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.RunStarted()
	m.RunStarted()
	m.StepCompleted("play")
	m.StepCompleted("play")
	m.StepCompleted("wait")
	m.ReferenceSkipped("animator")
	m.ActiveFades(3)
	m.RunEnded("completed", 10*time.Second)
	m.RunEnded("cancelled", 2*time.Second)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"runs started", testutil.ToFloat64(m.runsStarted), 2},
		{"runs completed", testutil.ToFloat64(m.runsEnded.WithLabelValues("completed")), 1},
		{"runs cancelled", testutil.ToFloat64(m.runsEnded.WithLabelValues("cancelled")), 1},
		{"play steps", testutil.ToFloat64(m.stepsCompleted.WithLabelValues("play")), 2},
		{"wait steps", testutil.ToFloat64(m.stepsCompleted.WithLabelValues("wait")), 1},
		{"skipped animators", testutil.ToFloat64(m.referencesSkipped.WithLabelValues("animator")), 1},
		{"active fades", testutil.ToFloat64(m.activeFades), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	m.ActiveFades(0)
	if got := testutil.ToFloat64(m.activeFades); got != 0 {
		t.Errorf("active fades after reset = %v, want 0", got)
	}
}

func TestMetricsAreIsolated(t *testing.T) {
	t.Parallel()
	a, b := NewMetrics(), NewMetrics()
	a.RunStarted()
	if got := testutil.ToFloat64(b.runsStarted); got != 0 {
		t.Errorf("second registry saw %v runs, want 0", got)
	}
}

func TestWritePrometheus(t *testing.T) {
	t.Parallel()

	t.Run("GET returns metrics", func(t *testing.T) {
		t.Parallel()
		m := NewMetrics()
		m.RunStarted()
		m.StepCompleted("parallel")

		req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
		rec := httptest.NewRecorder()
		m.WritePrometheus(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		for _, want := range []string{
			"revealtour_run_started_total 1",
			`revealtour_step_completed_total{kind="parallel"} 1`,
			"revealtour_fade_active 0",
			"go_goroutines",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("response should contain %q", want)
			}
		}
	})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		method := method
		t.Run(method+" returns method not allowed", func(t *testing.T) {
			t.Parallel()
			m := NewMetrics()
			req := httptest.NewRequest(method, "/metrics", http.NoBody)
			rec := httptest.NewRecorder()
			m.WritePrometheus(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
			}
			if got := rec.Header().Get("Allow"); got != "GET, HEAD" {
				t.Errorf("Allow = %q", got)
			}
		})
	}
}

func TestServerSecurityHeaders(t *testing.T) {
	t.Parallel()
	s := NewServer("127.0.0.1:0", NewMetrics(), nil)

	for _, path := range []string{"/metrics", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		rec := httptest.NewRecorder()
		s.srv.Handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
		for header, want := range map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
			"Referrer-Policy":        "no-referrer",
			"Cache-Control":          "no-store",
		} {
			if got := rec.Header().Get(header); got != want {
				t.Errorf("%s %s = %q, want %q", path, header, got, want)
			}
		}
	}
}

func TestServerServeAndShutdown(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	m.RunStarted()
	s := NewServer("127.0.0.1:0", m, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second, Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		cancel()
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "revealtour_run_started_total 1") {
		t.Errorf("scrape did not include the run counter")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v, want nil after cancellation", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeListenError(t *testing.T) {
	t.Parallel()
	s := NewServer("127.0.0.1:-1", NewMetrics(), nil)
	if err := s.Serve(context.Background()); err == nil {
		t.Fatal("Serve should fail on an invalid address")
	}
}
