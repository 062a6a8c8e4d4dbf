package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/ui"
)

// Style variables for the tour dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	panelTitleStyle   lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	separatorStyle    lipgloss.Style
	clockStyle        lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	revealStyle       lipgloss.Style
	fadingStyle       lipgloss.Style
	idleStyle         lipgloss.Style
	hoverStyle        lipgloss.Style
	unavailableStyle  lipgloss.Style
	logTimeStyle      lipgloss.Style
	logStepStyle      lipgloss.Style
	logSkipStyle      lipgloss.Style
	logRunStyle       lipgloss.Style
	sparklineStyle    lipgloss.Style
	chartStyle        lipgloss.Style
	statusRunStyle    lipgloss.Style
	statusPausedStyle lipgloss.Style
	statusDoneStyle   lipgloss.Style
	statusCancelStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Border)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Reveal)

	separatorStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	clockStyle = lipgloss.NewStyle().
		Foreground(t.Reveal)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	revealStyle = lipgloss.NewStyle().
		Foreground(t.Reveal)

	fadingStyle = lipgloss.NewStyle().
		Foreground(t.Fading)

	idleStyle = lipgloss.NewStyle().
		Foreground(t.Idle)

	hoverStyle = lipgloss.NewStyle().
		Foreground(t.Hover).
		Bold(true)

	unavailableStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Strikethrough(true)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logStepStyle = lipgloss.NewStyle().
		Foreground(t.Reveal)

	logSkipStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	logRunStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Fading)

	chartStyle = lipgloss.NewStyle().
		Foreground(t.Reveal)

	statusRunStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Reveal).
		Bold(true)

	statusCancelStyle = lipgloss.NewStyle().
		Foreground(t.Warning)
}
