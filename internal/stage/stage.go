package stage

import (
	"github.com/agbru/revealtour/internal/fade"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/tour"
)

// Stage owns the panels and the presentation state of one tour.
type Stage struct {
	registry *fade.Registry
	panels   map[string]*Panel
	order    []string
	controls []tour.ControlID
	inputs   []tour.InputID

	hovered map[tour.ControlID]bool
	focused map[tour.InputID]bool
	chrome  bool
	entries int

	continuous map[string]bool
	missing    map[string]bool
	observer   func(string, fade.State)
}

var (
	_ orchestration.PresentationContext = (*Stage)(nil)
	_ orchestration.ControlChecker      = (*Stage)(nil)
	_ orchestration.InputChecker        = (*Stage)(nil)
)

// Option configures a Stage.
type Option func(*Stage)

// WithContinuous marks animators that only drive a fill fraction and keep
// their element enabled. All others use fade.EnableAndAlpha.
func WithContinuous(ids ...string) Option {
	return func(s *Stage) {
		for _, id := range ids {
			s.continuous[id] = true
		}
	}
}

// WithMissing lists animator, control and input ids that must not resolve.
func WithMissing(ids ...string) Option {
	return func(s *Stage) {
		for _, id := range ids {
			s.missing[id] = true
		}
	}
}

// WithObserver forwards every animator state change to fn.
func WithObserver(fn func(id string, st fade.State)) Option {
	return func(s *Stage) { s.observer = fn }
}

// New builds a panel and an animator for every animator t references.
func New(t *tour.Tour, opts ...Option) *Stage {
	s := &Stage{
		registry:   fade.NewRegistry(),
		panels:     make(map[string]*Panel),
		hovered:    make(map[tour.ControlID]bool),
		focused:    make(map[tour.InputID]bool),
		continuous: make(map[string]bool),
		missing:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if t == nil {
		return s
	}

	var animatorOpts []fade.Option
	if s.observer != nil {
		animatorOpts = append(animatorOpts, fade.WithObserver(s.observer))
	}
	for _, ref := range t.AnimatorRefs() {
		id := string(ref)
		s.order = append(s.order, id)
		if s.missing[id] {
			continue
		}
		repr := fade.EnableAndAlpha
		if s.continuous[id] {
			repr = fade.ContinuousOnly
		}
		p := &Panel{enabled: repr == fade.ContinuousOnly}
		s.panels[id] = p
		s.registry.Add(fade.New(id, repr, p, animatorOpts...))
	}
	s.controls = t.ControlRefs()
	s.inputs = t.InputRefs()
	return s
}

// Registry returns the animators backing the panels.
func (s *Stage) Registry() *fade.Registry { return s.registry }

// Resolver adapts the registry for the orchestrator.
func (s *Stage) Resolver() orchestration.AnimatorResolver {
	return orchestration.RegistryResolver(s.registry)
}

// EnterTourChrome shows the tour chrome.
func (s *Stage) EnterTourChrome() {
	s.chrome = true
	s.entries++
}

// ExitTourChrome hides the tour chrome.
func (s *Stage) ExitTourChrome() { s.chrome = false }

// SetHoverSimulated records a control's simulated hover.
func (s *Stage) SetHoverSimulated(control tour.ControlID, hovered bool) {
	s.hovered[control] = hovered
}

// SetFocused records an input's focus.
func (s *Stage) SetFocused(input tour.InputID, focused bool) {
	s.focused[input] = focused
}

// ControlAvailable reports whether control exists on the stage.
func (s *Stage) ControlAvailable(control tour.ControlID) bool {
	return !s.missing[string(control)]
}

// InputAvailable reports whether input exists on the stage.
func (s *Stage) InputAvailable(input tour.InputID) bool {
	return !s.missing[string(input)]
}

// ChromeActive reports whether the tour chrome is shown.
func (s *Stage) ChromeActive() bool { return s.chrome }

// ChromeEntries counts how many times the chrome has been entered.
func (s *Stage) ChromeEntries() int { return s.entries }

// Panels returns a view of every referenced animator in tour order. Missing
// animators are omitted.
func (s *Stage) Panels() []PanelView {
	views := make([]PanelView, 0, len(s.panels))
	for _, id := range s.order {
		p, ok := s.panels[id]
		if !ok {
			continue
		}
		a, _ := s.registry.Lookup(id)
		views = append(views, PanelView{
			ID:             id,
			Representation: a.Representation(),
			Phase:          a.Phase(),
			Reveal:         p.reveal,
			Visible:        p.enabled,
			Interactive:    p.interactive,
			BlocksHits:     p.blocksHits,
		})
	}
	return views
}

// Controls returns the hover state of every control the tour names.
func (s *Stage) Controls() []ControlView {
	views := make([]ControlView, 0, len(s.controls))
	for _, c := range s.controls {
		views = append(views, ControlView{ID: string(c), Hovered: s.hovered[c], Available: s.ControlAvailable(c)})
	}
	return views
}

// Inputs returns the focus state of every input the tour names.
func (s *Stage) Inputs() []InputView {
	views := make([]InputView, 0, len(s.inputs))
	for _, in := range s.inputs {
		views = append(views, InputView{ID: string(in), Focused: s.focused[in], Available: s.InputAvailable(in)})
	}
	return views
}

// ActiveFades counts animators that are currently playing.
func (s *Stage) ActiveFades() int {
	n := 0
	for _, id := range s.order {
		if a, ok := s.registry.Lookup(id); ok && a.IsFading() {
			n++
		}
	}
	return n
}
