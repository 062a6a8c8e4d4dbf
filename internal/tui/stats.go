package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/format"
)

// StatsModel displays session counters and the tour totals.
type StatsModel struct {
	stats   SessionStats
	active  int
	panels  int
	nominal time.Duration
	width   int
	height  int
}

// NewStatsModel creates a stats panel for a tour of the given nominal length.
func NewStatsModel(nominal time.Duration) StatsModel {
	return StatsModel{nominal: nominal}
}

// SetSize updates dimensions.
func (m *StatsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update stores the latest counters.
func (m *StatsModel) Update(stats SessionStats, active, panels int) {
	m.stats = stats
	m.active = active
	m.panels = panels
}

// View renders the stats panel.
func (m StatsModel) View() string {
	colWidth := max((m.width-4)/2, 0)
	rows := []string{
		panelTitleStyle.Render("Session"),
		formatStatCol("Runs:", fmt.Sprintf("%d", m.stats.Runs), colWidth) +
			formatStatCol("Nominal:", format.FormatETA(m.nominal), colWidth),
		formatStatCol("Completed:", fmt.Sprintf("%d", m.stats.Completed), colWidth) +
			formatStatCol("Cancelled:", fmt.Sprintf("%d", m.stats.Cancelled), colWidth),
		formatStatCol("Steps:", fmt.Sprintf("%d", m.stats.Steps), colWidth) +
			formatStatCol("Skipped:", fmt.Sprintf("%d", m.stats.Skipped), colWidth),
		formatStatCol("Fading:", fmt.Sprintf("%d/%d", m.active, m.panels), colWidth),
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		MaxHeight(m.height).
		Render(strings.Join(rows, "\n"))
}

func formatStatCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		labelStyle.Render(fmt.Sprintf("%-10s", label)),
		valueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
