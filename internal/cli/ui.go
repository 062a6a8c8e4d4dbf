//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate is how often the spinner frame and the progress
	// line are redrawn.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the bar width of the headless progress line.
	ProgressBarWidth = 30
)

// Spinner is the part of a terminal spinner the progress display drives.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix replaces the text drawn after the spinner frame.
	UpdateSuffix(suffix string)
}

// termSpinner drives a briandowns spinner on the terminal.
type termSpinner struct {
	*spinner.Spinner
}

// UpdateSuffix swaps the suffix under the spinner's lock, since its
// goroutine reads it on every frame.
func (t termSpinner) UpdateSuffix(suffix string) {
	t.Lock()
	defer t.Unlock()
	t.Suffix = suffix
}

// newSpinner is replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	return termSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}
