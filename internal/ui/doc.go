// Package ui provides theme and color support for the tour hosts. It defines
// the ANSI palette used by the headless runner and the lipgloss palette used
// by the terminal dashboard, so both hosts honour the same color choice.
package ui
