package orchestration

import (
	"github.com/agbru/revealtour/internal/fade"
	"github.com/agbru/revealtour/internal/tour"
)

// AnimatorResolver maps the logical animator names used by a tour to the
// animators that drive the host's elements.
type AnimatorResolver interface {
	Animator(id tour.AnimatorID) (*fade.Animator, bool)
}

// AnimatorResolverFunc adapts a function to AnimatorResolver.
type AnimatorResolverFunc func(id tour.AnimatorID) (*fade.Animator, bool)

// Animator calls f.
func (f AnimatorResolverFunc) Animator(id tour.AnimatorID) (*fade.Animator, bool) {
	return f(id)
}

// RegistryResolver resolves animators through a fade.Registry.
func RegistryResolver(r *fade.Registry) AnimatorResolver {
	return AnimatorResolverFunc(func(id tour.AnimatorID) (*fade.Animator, bool) {
		if r == nil {
			return nil, false
		}
		a, ok := r.Lookup(string(id))
		return a, ok && a != nil
	})
}
