package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar renders progress in [0, 1] as a bar of the given width. Values
// outside the range are clamped.
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar]  42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	progress = clamp01(progress)
	etaText := FormatETA(eta)
	if progress >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, etaText)
}

// RevealBar renders a reveal fraction as a bar and a two-decimal value, for
// per-element status lines.
func RevealBar(fraction float64, width int) string {
	return fmt.Sprintf("%s %.2f", ProgressBar(fraction, width), clamp01(fraction))
}

func clamp01(v float64) float64 { return min(max(v, 0), 1) }
