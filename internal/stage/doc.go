// Package stage is the in-memory surface both hosts render: one Panel per
// animator the tour references, plus the hover, focus and chrome state the
// orchestrator toggles through its presentation context. Ids listed as
// missing are left out of the registry or reported unavailable, so a host
// can rehearse how a tour degrades.
package stage
