package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/orchestration"
)

// HeaderModel renders the top bar: title, tour, run status and tour clock.
type HeaderModel struct {
	tour    string
	runID   string
	status  orchestration.RunStatus
	elapsed time.Duration
	chrome  bool
	paused  bool
	width   int
}

// NewHeaderModel creates a header for the named tour.
func NewHeaderModel(tourName string) HeaderModel {
	return HeaderModel{tour: tourName}
}

// SetSnapshot updates the header from the latest run snapshot.
func (h *HeaderModel) SetSnapshot(s orchestration.Snapshot, chrome bool) {
	h.runID = s.RunID
	h.status = s.Status
	h.elapsed = s.Elapsed
	h.chrome = chrome
}

// SetPaused marks the clock as paused.
func (h *HeaderModel) SetPaused(p bool) {
	h.paused = p
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	pipe := separatorStyle.Render(" | ")

	parts := []string{
		titleStyle.Render("revealtour"),
		valueStyle.Render(h.tour),
		statusStyle(h.status, h.paused).Render(statusLabel(h.status, h.paused)),
		clockStyle.Render(format.FormatClock(h.elapsed)),
	}
	if h.runID != "" {
		parts = append(parts, labelStyle.Render("run "+shortID(h.runID)))
	}
	if h.chrome {
		parts = append(parts, labelStyle.Render("chrome"))
	}
	row := strings.Join(parts, pipe)

	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + strings.Repeat(" ", gap))
}

func statusLabel(s orchestration.RunStatus, paused bool) string {
	if paused && s == orchestration.StatusRunning {
		return "paused"
	}
	return s.String()
}

func statusStyle(s orchestration.RunStatus, paused bool) lipgloss.Style {
	switch {
	case paused:
		return statusPausedStyle
	case s == orchestration.StatusRunning:
		return statusRunStyle
	case s == orchestration.StatusCompleted:
		return statusDoneStyle
	case s == orchestration.StatusCancelled:
		return statusCancelStyle
	default:
		return labelStyle
	}
}
