package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/orchestration"
)

// ProgressUpdate is one sample of the run, sent from the tick loop to the
// progress display.
type ProgressUpdate struct {
	Progress orchestration.AggregatedProgress
	Status   orchestration.RunStatus
	Elapsed  time.Duration
	// Detail describes the current step.
	Detail string
	// Active is the number of animators currently fading.
	Active int
}

// progressLine renders an update as a single status line.
func progressLine(u ProgressUpdate) string {
	line := fmt.Sprintf("%s %s step %d/%d",
		format.FormatClock(u.Elapsed),
		format.FormatProgressBarWithETA(u.Progress.Fraction, u.Progress.ETA, ProgressBarWidth),
		min(u.Progress.Step+1, u.Progress.Steps), u.Progress.Steps)
	if u.Detail != "" {
		line += " " + u.Detail
	}
	return line
}

// DisplayProgress shows a spinner followed by the latest progress line until
// updates is closed, then prints the last line it received.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last ProgressUpdate
	received := false
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				s.Stop()
				if received {
					fmt.Fprintln(out, progressLine(last))
				}
				return
			}
			last, received = u, true
		case <-ticker.C:
			if received {
				s.UpdateSuffix(" " + progressLine(last))
			}
		}
	}
}
