package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/orchestration"
)

// FooterModel renders overall progress and the key hints.
type FooterModel struct {
	help     help.Model
	keys     KeyMap
	progress orchestration.AggregatedProgress
	width    int
}

// NewFooterModel creates a footer listing keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{help: help.New(), keys: keys}
}

// SetProgress stores the latest aggregated progress.
func (f *FooterModel) SetProgress(p orchestration.AggregatedProgress) {
	f.progress = p
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// View renders the footer on two lines.
func (f FooterModel) View() string {
	barWidth := max(f.width-40, 10)
	bar := format.FormatProgressBarWithETA(f.progress.Fraction, f.progress.ETA, barWidth)
	step := min(f.progress.Step+1, f.progress.Steps)
	line := revealStyle.Render(bar) + labelStyle.Render(fmtStep(step, f.progress.Steps))
	return lipgloss.JoinVertical(lipgloss.Left, " "+line, " "+f.help.View(f.keys))
}

func fmtStep(step, steps int) string {
	if steps == 0 {
		return ""
	}
	return fmt.Sprintf(" step %d/%d", step, steps)
}
