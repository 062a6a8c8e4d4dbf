package stage

import "github.com/agbru/revealtour/internal/fade"

// Panel is a fade.Element that records what the animator last applied.
type Panel struct {
	reveal      float64
	enabled     bool
	interactive bool
	blocksHits  bool
}

var _ fade.Element = (*Panel)(nil)

// SetReveal records the reveal fraction.
func (p *Panel) SetReveal(fraction float64) { p.reveal = fraction }

// SetEnabled records whether the panel is shown at all.
func (p *Panel) SetEnabled(enabled bool) { p.enabled = enabled }

// SetInteractive records whether the panel accepts input.
func (p *Panel) SetInteractive(interactive bool) { p.interactive = interactive }

// SetBlocksHits records whether the panel intercepts pointer hits.
func (p *Panel) SetBlocksHits(blocks bool) { p.blocksHits = blocks }

// PanelView is a read-only copy of a panel and its animator state.
type PanelView struct {
	ID             string
	Representation fade.Representation
	Phase          fade.Phase
	Reveal         float64
	// Visible is false for enable-alpha panels that are currently disabled.
	Visible     bool
	Interactive bool
	BlocksHits  bool
}

// ControlView reports a control's simulated hover state.
type ControlView struct {
	ID        string
	Hovered   bool
	Available bool
}

// InputView reports an input's focus state.
type InputView struct {
	ID        string
	Focused   bool
	Available bool
}
