package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration prints short durations in whole µs or ms and
// longer ones with time.Duration's own layout.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// FormatClock renders an elapsed run time as m:ss.t, the layout used by the
// tour header and the headless status line.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d / (100 * time.Millisecond)
	minutes := tenths / 600
	seconds := (tenths / 10) % 60
	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths%10)
}

// FormatETA formats a remaining-time estimate. Non-positive values mean the
// estimate is not known yet.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := eta / time.Hour
	m := (eta % time.Hour) / time.Minute
	s := (eta % time.Minute) / time.Second
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
