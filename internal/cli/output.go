package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/revealtour/internal/config"
	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/tour"
	"github.com/agbru/revealtour/internal/ui"
)

// PrintExecutionConfig prints the tour and the clock settings before a
// headless session.
func PrintExecutionConfig(cfg config.AppConfig, t *tour.Tour, out io.Writer) {
	th := ui.GetCurrentTheme()
	mode := fmt.Sprintf("real time x%g", cfg.Speed)
	if cfg.Simulate {
		mode = "simulated"
	}
	fmt.Fprintf(out, "Tour %s: %d steps, nominal %s\n",
		ui.Paint(th.Accent, t.Name()), t.Len(), t.Nominal())
	fmt.Fprintf(out, "Clock: %s, tick %s, hover period %s\n",
		mode, format.FormatExecutionDuration(cfg.Tick), cfg.HoverPeriod)
	if len(cfg.Missing) > 0 {
		fmt.Fprintf(out, "Unavailable: %s\n", ui.Paint(th.Warning, strings.Join(cfg.Missing, ", ")))
	}
	if cfg.Loop {
		fmt.Fprintln(out, "Looping until interrupted")
	}
}

// PrintSummary prints the outcome of a headless session.
func PrintSummary(res Result, out io.Writer) {
	s := res.Last
	fmt.Fprintf(out, "Tour %q %s after %s (%d/%d runs completed",
		s.Tour, statusText(s.Status), format.FormatClock(s.Elapsed), res.Completed, res.Runs)
	if s.RunID != "" {
		fmt.Fprintf(out, ", last run %s", s.RunID)
	}
	fmt.Fprintln(out, ")")
}
