// Package metrics exposes tour run counters in the Prometheus text format.
// Metrics implements orchestration.Recorder, and Server serves the registry
// on /metrics for the lifetime of a host.
package metrics
