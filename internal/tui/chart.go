package tui

import (
	"strings"
	"time"
)

// ActivitySampleInterval is the tour time between two activity samples.
const ActivitySampleInterval = 250 * time.Millisecond

// ActivityModel charts overall tour progress and the share of panels that
// are fading, sampled on the tour clock.
type ActivityModel struct {
	progress *Series
	fading   *Series
	runID    string
	next     time.Duration
	width    int
	height   int
}

// NewActivityModel creates an empty activity chart.
func NewActivityModel() ActivityModel {
	return ActivityModel{
		progress: NewSeries(64),
		fading:   NewSeries(64),
	}
}

// SetSize updates dimensions and resizes the history to fill the chart.
func (m *ActivityModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := max(w-4, 1)
	m.progress.SetLimit(inner * 2)
	m.fading.SetLimit(inner)
}

// Sample records progress and fading/panels at tour time at for runID. A new
// run clears the history; samples closer than ActivitySampleInterval are
// dropped.
func (m *ActivityModel) Sample(runID string, at time.Duration, progress float64, fading, panels int) {
	if runID != m.runID {
		m.Reset()
		m.runID = runID
	}
	if at < m.next {
		return
	}
	m.next = at + ActivitySampleInterval
	m.progress.Push(progress)
	share := 0.0
	if panels > 0 {
		share = float64(fading) / float64(panels)
	}
	m.fading.Push(share)
}

// Reset clears the history.
func (m *ActivityModel) Reset() {
	m.progress.Clear()
	m.fading.Clear()
	m.runID = ""
	m.next = 0
}

// View renders the activity panel.
func (m ActivityModel) View() string {
	inner := max(m.width-4, 1)
	chartRows := max(m.height-4, 1)

	rows := []string{panelTitleStyle.Render("Activity")}
	for _, line := range RenderBrailleChart(m.progress.Values(), inner, chartRows) {
		rows = append(rows, chartStyle.Render(line))
	}
	if m.progress.Len() == 0 {
		rows = append(rows, labelStyle.Render("waiting for a run"))
	}
	rows = append(rows, sparklineStyle.Render(RenderSparkline(m.fading.Values())))

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		MaxHeight(m.height).
		Render(strings.Join(rows, "\n"))
}
