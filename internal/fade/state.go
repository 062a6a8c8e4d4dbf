package fade

import "time"

// Phase is the position of an animator within its reveal sequence.
type Phase int

const (
	// Idle means no sequence is running and the reveal fraction is zero.
	Idle Phase = iota
	// FadingIn ramps the reveal fraction from 0 to 1.
	FadingIn
	// Holding keeps the reveal fraction at 1.
	Holding
	// FadingOut ramps the reveal fraction from 1 back to 0.
	FadingOut
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case FadingIn:
		return "fading-in"
	case Holding:
		return "holding"
	case FadingOut:
		return "fading-out"
	default:
		return "unknown"
	}
}

// Representation selects how the reveal is mirrored onto the element.
type Representation int

const (
	// ContinuousOnly drives only the reveal fraction; the element stays enabled.
	ContinuousOnly Representation = iota
	// EnableAndAlpha also enables the element when a fade starts and
	// disables it when the fade ends or is stopped.
	EnableAndAlpha
)

// String returns the configuration name of the representation.
func (r Representation) String() string {
	switch r {
	case ContinuousOnly:
		return "continuous"
	case EnableAndAlpha:
		return "enable-alpha"
	default:
		return "unknown"
	}
}

// ParseRepresentation maps a configuration name back to a Representation.
func ParseRepresentation(s string) (Representation, bool) {
	switch s {
	case "continuous", "":
		return ContinuousOnly, true
	case "enable-alpha":
		return EnableAndAlpha, true
	default:
		return ContinuousOnly, false
	}
}

// State is a snapshot of an animator. Reveal is the only value hosts are
// expected to render; the rest is exposed for progress reporting and tests.
type State struct {
	Phase Phase
	// Elapsed is the time spent in the current phase.
	Elapsed time.Duration
	// Total is the time spent since the current sequence started.
	Total    time.Duration
	Reveal   float64
	Duration time.Duration
	Hold     time.Duration
}

// Nominal returns the full length of the current sequence: two ramps and the hold.
func (s State) Nominal() time.Duration {
	return 2*s.Duration + s.Hold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
