// Package logging defines the Logger the orchestrator and hosts write
// diagnostics through, with a zerolog backend for the binary and a std log
// backend for embedders.
package logging
