// Package orchestration sequences a tour's steps over fade animators.
//
// An Orchestrator owns at most one Run at a time. Hosts drive it by calling
// Tick once per scheduling quantum with the elapsed time; every fade, wait
// and hover pulse advances inside Tick, so the package needs no locks and
// starts no goroutines. Begin, Exit and Reset always retire the current Run
// before anything else happens, which leaves every animator the Run touched
// at zero and every simulated hover or focus released.
//
// Collaborators the tour refers to are injected: an AnimatorResolver maps
// animator names to *fade.Animator, and a PresentationContext receives the
// chrome, hover and focus callbacks. A reference that cannot be resolved is
// skipped instantly and never aborts a Run.
package orchestration
