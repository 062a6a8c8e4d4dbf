package orchestration

import (
	"time"

	"github.com/agbru/revealtour/internal/tour"
)

// ProgressAggregator turns run snapshots into overall tour progress. Each
// step is weighted by its nominal duration, so a long closing group counts
// for more than a short wait. Both the CLI and the TUI use it.
type ProgressAggregator struct {
	weights []time.Duration
	// before[i] is the summed weight of steps 0..i-1.
	before []time.Duration
	total  time.Duration
}

// NewProgressAggregator returns an aggregator for t. It returns nil for a
// nil tour.
func NewProgressAggregator(t *tour.Tour) *ProgressAggregator {
	if t == nil {
		return nil
	}
	steps := t.Steps()
	a := &ProgressAggregator{
		weights: make([]time.Duration, len(steps)),
		before:  make([]time.Duration, len(steps)+1),
	}
	for i, s := range steps {
		a.weights[i] = s.Nominal()
		a.before[i+1] = a.before[i] + a.weights[i]
	}
	a.total = a.before[len(steps)]
	return a
}

// AggregatedProgress is the overall position of a Run.
type AggregatedProgress struct {
	// Step is the index of the current step.
	Step  int
	Steps int
	// Fraction is the weighted completion in [0,1].
	Fraction float64
	// ETA is the nominal time left, assuming every reference resolves.
	ETA time.Duration
}

// Update computes progress for s.
func (a *ProgressAggregator) Update(s Snapshot) AggregatedProgress {
	steps := len(a.weights)
	p := AggregatedProgress{Step: s.Step, Steps: steps}

	switch s.Status {
	case StatusNotStarted:
		p.ETA = a.total
		return p
	case StatusCompleted:
		p.Step = steps
		p.Fraction = 1
		return p
	}

	step := min(max(s.Step, 0), steps)
	done := a.before[step]
	if step < steps {
		done += min(max(s.StepElapsed, 0), a.weights[step])
	}

	if a.total > 0 {
		p.Fraction = float64(done) / float64(a.total)
	} else if steps > 0 {
		p.Fraction = float64(step) / float64(steps)
	}
	p.ETA = a.total - done
	return p
}

// Total returns the nominal length of the tour.
func (a *ProgressAggregator) Total() time.Duration {
	return a.total
}

// NumSteps returns the number of steps being tracked.
func (a *ProgressAggregator) NumSteps() int {
	return len(a.weights)
}
