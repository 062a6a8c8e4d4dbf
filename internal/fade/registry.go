package fade

import "sort"

// Registry maps logical animator names to animators.
type Registry struct {
	animators map[string]*Animator
}

// NewRegistry returns a registry holding the given animators.
func NewRegistry(animators ...*Animator) *Registry {
	r := &Registry{animators: make(map[string]*Animator, len(animators))}
	for _, a := range animators {
		r.Add(a)
	}
	return r
}

// Add registers a, replacing any animator with the same ID. Nil is ignored.
func (r *Registry) Add(a *Animator) {
	if a == nil {
		return
	}
	r.animators[a.ID()] = a
}

// Remove unregisters the animator with the given ID.
func (r *Registry) Remove(id string) {
	delete(r.animators, id)
}

// Lookup returns the animator registered under id.
func (r *Registry) Lookup(id string) (*Animator, bool) {
	a, ok := r.animators[id]
	return a, ok
}

// IDs returns the registered names in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.animators))
	for id := range r.animators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered animators.
func (r *Registry) Len() int { return len(r.animators) }
