package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "revealtour"

// Metrics holds the run counters on a private registry, so several
// orchestrators in one process (and tests) never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runsStarted       prometheus.Counter
	runsEnded         *prometheus.CounterVec
	runDuration       *prometheus.HistogramVec
	stepsCompleted    *prometheus.CounterVec
	referencesSkipped *prometheus.CounterVec
	activeFades       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "started_total",
			Help:      "Tour runs started.",
		}),
		runsEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "run",
				Name:      "ended_total",
				Help:      "Tour runs ended, by final status.",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "run",
				Name:      "duration_seconds",
				Help:      "Tour time accumulated by a run before it ended.",
				Buckets:   []float64{1, 5, 10, 20, 40, 60, 90, 120, 300},
			},
			[]string{"status"},
		),
		stepsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "step",
				Name:      "completed_total",
				Help:      "Steps completed, by step kind.",
			},
			[]string{"kind"},
		),
		referencesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "step",
				Name:      "references_skipped_total",
				Help:      "Unresolved animator, control or input references.",
			},
			[]string{"kind"},
		),
		activeFades: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fade",
			Name:      "active",
			Help:      "Animators currently playing, including detached ones.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.runsStarted,
		m.runsEnded,
		m.runDuration,
		m.stepsCompleted,
		m.referencesSkipped,
		m.activeFades,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RunStarted counts a new run.
func (m *Metrics) RunStarted() { m.runsStarted.Inc() }

// RunEnded counts a finished run and observes its elapsed tour time.
func (m *Metrics) RunEnded(status string, elapsed time.Duration) {
	m.runsEnded.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// StepCompleted counts a step of the given kind.
func (m *Metrics) StepCompleted(kind string) { m.stepsCompleted.WithLabelValues(kind).Inc() }

// ReferenceSkipped counts an unresolved reference of the given kind.
func (m *Metrics) ReferenceSkipped(kind string) { m.referencesSkipped.WithLabelValues(kind).Inc() }

// ActiveFades sets the number of animators currently playing.
func (m *Metrics) ActiveFades(n int) { m.activeFades.Set(float64(n)) }

// WritePrometheus serves the registry in the Prometheus exposition format.
// Only GET and HEAD are accepted.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	m.handler.ServeHTTP(w, r)
}
