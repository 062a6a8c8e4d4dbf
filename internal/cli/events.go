package cli

import (
	"fmt"
	"io"

	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/tour"
	"github.com/agbru/revealtour/internal/ui"
)

// EventPrinter writes one line per lifecycle event. It is used in verbose
// mode, where it replaces the spinner.
type EventPrinter struct {
	out io.Writer
}

// NewEventPrinter returns a printer writing to out.
func NewEventPrinter(out io.Writer) *EventPrinter {
	return &EventPrinter{out: out}
}

// Hooks returns orchestrator hooks that print through p.
func (p *EventPrinter) Hooks() orchestration.Hooks {
	return orchestration.Hooks{
		OnRunStart:  p.runStarted,
		OnStepStart: p.stepStarted,
		OnRunEnd:    p.runEnded,
		OnSkip:      p.skipped,
	}
}

func (p *EventPrinter) prefix(s orchestration.Snapshot) string {
	return ui.Paint(ui.GetCurrentTheme().Dim, "["+format.FormatClock(s.Elapsed)+"]")
}

func (p *EventPrinter) runStarted(s orchestration.Snapshot) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(p.out, "%s %s tour %q (%d steps, run %s)\n",
		p.prefix(s), ui.Paint(t.Bold, "begin"), s.Tour, s.Steps, ui.Paint(t.Accent, s.RunID))
}

func (p *EventPrinter) stepStarted(s orchestration.Snapshot, step tour.Step) {
	fmt.Fprintf(p.out, "%s step %d/%d %s\n",
		p.prefix(s), s.Step+1, s.Steps, ui.Paint(ui.GetCurrentTheme().Accent, step.String()))
}

func (p *EventPrinter) runEnded(s orchestration.Snapshot) {
	fmt.Fprintf(p.out, "%s %s\n", p.prefix(s), statusText(s.Status))
}

func (p *EventPrinter) skipped(s orchestration.Snapshot, err error) {
	fmt.Fprintf(p.out, "%s %s %v\n",
		p.prefix(s), ui.Paint(ui.GetCurrentTheme().Warning, "skip"), err)
}

// statusText colors a run status for terminal output.
func statusText(status orchestration.RunStatus) string {
	t := ui.GetCurrentTheme()
	switch status {
	case orchestration.StatusCompleted:
		return ui.Paint(t.Success, status.String())
	case orchestration.StatusCancelled:
		return ui.Paint(t.Warning, status.String())
	default:
		return status.String()
	}
}
