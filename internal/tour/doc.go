// Package tour defines the immutable step list a guided tour is made of.
//
// A Tour is an ordered sequence of Steps built once at configuration time,
// either with a Builder, loaded from a YAML or TOML file, or taken from
// Default. Steps refer to animators, controls and inputs by logical
// identifiers; the orchestration package resolves them at run time.
package tour
