package orchestration

import (
	"time"

	"github.com/agbru/revealtour/internal/tour"
)

// DefaultHoverPeriod is how long a hover pulse stays on, and then off.
const DefaultHoverPeriod = 500 * time.Millisecond

// hoverPulse toggles the simulated hover of a fixed control set. It starts
// on and flips every period until stopped.
type hoverPulse struct {
	controls []tour.ControlID
	period   time.Duration
	elapsed  time.Duration
	on       bool
	stopped  bool
	set      func(tour.ControlID, bool)
}

func startHoverPulse(controls []tour.ControlID, period time.Duration, set func(tour.ControlID, bool)) *hoverPulse {
	p := &hoverPulse{controls: controls, period: period, set: set}
	p.apply(true)
	return p
}

func (p *hoverPulse) advance(dt time.Duration) {
	if p.stopped || p.period <= 0 {
		return
	}
	p.elapsed += dt
	next := p.on
	for p.elapsed >= p.period {
		p.elapsed -= p.period
		next = !next
	}
	if next != p.on {
		p.apply(next)
	}
}

// stop turns every control off, whatever the current half-cycle.
func (p *hoverPulse) stop() {
	if p.stopped {
		return
	}
	p.stopped = true
	p.apply(false)
}

func (p *hoverPulse) apply(on bool) {
	p.on = on
	for _, c := range p.controls {
		p.set(c, on)
	}
}
