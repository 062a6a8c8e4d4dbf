package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/format"
)

// LogsModel shows the event log in a scrollable viewport.
type LogsModel struct {
	viewport viewport.Model
	version  uint64
	width    int
	height   int
}

// NewLogsModel creates an empty logs panel.
func NewLogsModel() LogsModel {
	return LogsModel{viewport: viewport.New(0, 0)}
}

// SetSize updates dimensions.
func (m *LogsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(w-4, 0)
	m.viewport.Height = max(h-3, 0)
}

// Sync refreshes the content from log when it has changed, following the
// tail unless the user scrolled up.
func (m *LogsModel) Sync(log *EventLog) {
	if log.Version() == m.version {
		return
	}
	m.version = log.Version()

	follow := m.viewport.AtBottom()
	lines := make([]string, 0, len(log.all()))
	for _, e := range log.all() {
		lines = append(lines, renderEntry(e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if follow {
		m.viewport.GotoBottom()
	}
}

// ScrollUp moves the view up by n lines.
func (m *LogsModel) ScrollUp(n int) { m.viewport.LineUp(n) }

// ScrollDown moves the view down by n lines.
func (m *LogsModel) ScrollDown(n int) { m.viewport.LineDown(n) }

// PageUp moves the view up by one page.
func (m *LogsModel) PageUp() { m.viewport.ViewUp() }

// PageDown moves the view down by one page.
func (m *LogsModel) PageDown() { m.viewport.ViewDown() }

// View renders the logs panel.
func (m LogsModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("Events"),
		m.viewport.View())
	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		MaxHeight(m.height).
		Render(content)
}

func renderEntry(e logEntry) string {
	style := logStepStyle
	switch e.kind {
	case entryRun, entryEnd:
		style = logRunStyle
	case entrySkip:
		style = logSkipStyle
	}
	return fmt.Sprintf("%s %s", logTimeStyle.Render(format.FormatClock(e.at)), style.Render(e.text))
}
