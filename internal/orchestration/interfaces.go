//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import "github.com/agbru/revealtour/internal/tour"

// PresentationContext is the host surface the orchestrator drives besides
// the animators themselves. Calls are made synchronously from Begin, Exit,
// Reset or Tick.
type PresentationContext interface {
	// EnterTourChrome shows the tour-mode chrome.
	EnterTourChrome()
	// ExitTourChrome hides the tour-mode chrome.
	ExitTourChrome()
	// SetHoverSimulated puts a control into or out of its hovered look.
	SetHoverSimulated(control tour.ControlID, hovered bool)
	// SetFocused focuses or unfocuses a text input.
	SetFocused(input tour.InputID, focused bool)
}

// ControlChecker is implemented by presentations that can report missing
// controls. Controls it reports as unavailable are skipped.
type ControlChecker interface {
	ControlAvailable(control tour.ControlID) bool
}

// InputChecker is implemented by presentations that can report missing
// inputs. Inputs it reports as unavailable are skipped.
type InputChecker interface {
	InputAvailable(input tour.InputID) bool
}
