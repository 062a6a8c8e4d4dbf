package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/revealtour/internal/fade"
	"github.com/agbru/revealtour/internal/format"
	"github.com/agbru/revealtour/internal/stage"
)

// StageModel renders every panel of the stage as a reveal bar, followed by
// the simulated controls and inputs.
type StageModel struct {
	stage  *stage.Stage
	width  int
	height int
}

// NewStageModel creates a view of st.
func NewStageModel(st *stage.Stage) StageModel {
	return StageModel{stage: st}
}

// SetSize updates dimensions.
func (m *StageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// idWidth is the column reserved for panel ids.
const idWidth = 13

// View renders the stage panel.
func (m StageModel) View() string {
	var rows []string
	rows = append(rows, panelTitleStyle.Render("Stage"))

	barWidth := max(m.width-idWidth-24, 4)
	for _, p := range m.stage.Panels() {
		rows = append(rows, m.panelRow(p, barWidth))
	}

	if controls := m.stage.Controls(); len(controls) > 0 {
		cells := make([]string, len(controls))
		for i, c := range controls {
			cells[i] = chip(c.ID, c.Available, c.Hovered)
		}
		rows = append(rows, "", labelStyle.Render("controls ")+strings.Join(cells, " "))
	}
	if inputs := m.stage.Inputs(); len(inputs) > 0 {
		cells := make([]string, len(inputs))
		for i, in := range inputs {
			cells[i] = chip(in.ID, in.Available, in.Focused)
		}
		rows = append(rows, labelStyle.Render("inputs   ")+strings.Join(cells, " "))
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		MaxHeight(m.height).
		Render(strings.Join(rows, "\n"))
}

func (m StageModel) panelRow(p stage.PanelView, barWidth int) string {
	style := idleStyle
	switch p.Phase {
	case fade.FadingIn, fade.Holding:
		style = revealStyle
	case fade.FadingOut:
		style = fadingStyle
	}

	flags := "  "
	if p.Visible {
		flags = "v "
	}
	if p.Interactive {
		flags = "vi"
	}

	return fmt.Sprintf("%-*s %s %-10s %s",
		idWidth, p.ID,
		style.Render(format.RevealBar(p.Reveal, barWidth)),
		labelStyle.Render(p.Phase.String()),
		labelStyle.Render(flags))
}

// chip renders a control or input id, highlighted when active and struck
// through when the stage does not have it.
func chip(id string, available, active bool) string {
	label := "[" + id + "]"
	switch {
	case !available:
		return unavailableStyle.Render(label)
	case active:
		return hoverStyle.Render(label)
	default:
		return labelStyle.Render(label)
	}
}
