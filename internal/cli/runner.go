package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/revealtour/internal/clock"
	"github.com/agbru/revealtour/internal/logging"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/stage"
)

// RunnerOptions configures a headless Runner.
type RunnerOptions struct {
	// Tick is the interval between orchestrator ticks, and the fixed quantum
	// in simulate mode.
	Tick time.Duration
	// Speed scales real time in real-time mode.
	Speed float64
	// Simulate advances by Tick per iteration without waiting for the wall clock.
	Simulate bool
	// Loop begins the tour again each time it completes.
	Loop bool
	// ShowProgress enables the spinner and progress line.
	ShowProgress bool
}

// Result summarises a headless session.
type Result struct {
	// Runs is the number of runs begun.
	Runs int
	// Completed is the number of runs that reached the end of the tour.
	Completed int
	// Last describes the most recent run.
	Last orchestration.Snapshot
}

// Runner plays a tour without a terminal UI. All orchestrator calls happen on
// the goroutine that calls Run; the progress display only receives copies.
type Runner struct {
	orch     *orchestration.Orchestrator
	stage    *stage.Stage
	progress *orchestration.ProgressAggregator
	opts     RunnerOptions
	out      io.Writer
	logger   logging.Logger
}

// NewRunner returns a runner for o, whose animators and presentation are st.
func NewRunner(o *orchestration.Orchestrator, st *stage.Stage, opts RunnerOptions, out io.Writer, logger logging.Logger) *Runner {
	if opts.Tick <= 0 {
		opts.Tick = 50 * time.Millisecond
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Runner{
		orch:     o,
		stage:    st,
		progress: orchestration.NewProgressAggregator(o.Tour()),
		opts:     opts,
		out:      out,
		logger:   logger,
	}
}

// Run begins the tour and ticks it until it completes (or, with Loop, until
// ctx is done). On cancellation the current run is cancelled and ctx.Err()
// is returned. The tour chrome is always left before Run returns.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	updates := make(chan ProgressUpdate, 1)
	var wg sync.WaitGroup
	if r.opts.ShowProgress {
		wg.Add(1)
		go DisplayProgress(&wg, updates, r.out)
	}
	defer func() {
		close(updates)
		wg.Wait()
	}()

	var c clock.Clock = clock.Fixed(r.opts.Tick)
	var tickC <-chan time.Time
	if !r.opts.Simulate {
		wall := clock.NewWall(r.opts.Speed)
		wall.Elapsed()
		c = wall
		ticker := time.NewTicker(r.opts.Tick)
		defer ticker.Stop()
		tickC = ticker.C
	}

	r.orch.Begin()
	res.Runs++

	for {
		r.publish(updates)
		if err := ctx.Err(); err != nil {
			return r.cancel(res, err)
		}

		if !r.orch.IsRunning() && !r.orch.PendingBegin() {
			if r.orch.Status() != orchestration.StatusCompleted {
				break
			}
			res.Completed++
			if !r.opts.Loop {
				break
			}
			r.logger.Debug("looping tour", logging.Int("completed", res.Completed))
			r.orch.Begin()
			res.Runs++
			continue
		}

		if tickC == nil {
			r.orch.TickClock(c)
			continue
		}

		select {
		case <-ctx.Done():
			return r.cancel(res, ctx.Err())
		case <-tickC:
			r.orch.TickClock(c)
		}
	}

	res.Last = r.orch.Snapshot()
	r.orch.Exit()
	return res, nil
}

func (r *Runner) cancel(res Result, err error) (Result, error) {
	r.orch.Exit()
	res.Last = r.orch.Snapshot()
	r.logger.Debug("headless run interrupted", logging.Err(err))
	return res, err
}

// publish offers the latest state to the display without blocking the tick
// loop; a stale sample still waiting in the channel is replaced.
func (r *Runner) publish(updates chan ProgressUpdate) {
	if !r.opts.ShowProgress {
		return
	}
	snap := r.orch.Snapshot()
	u := ProgressUpdate{
		Progress: r.progress.Update(snap),
		Status:   snap.Status,
		Elapsed:  snap.Elapsed,
	}
	if r.stage != nil {
		u.Active = r.stage.ActiveFades()
	}
	if step, ok := r.orch.Tour().Step(snap.Step); ok && snap.Status == orchestration.StatusRunning {
		u.Detail = step.String()
	}
	select {
	case <-updates:
	default:
	}
	select {
	case updates <- u:
	default:
	}
}
