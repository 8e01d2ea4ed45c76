// Package server runs a manager's HTTP API on an already-resolved listener.
//
// Besides the routes of the supplied handler, the server exposes /livez,
// /readyz, /drain and /undrain for orchestration, /debug/pprof when enabled,
// and Prometheus metrics on a separate address when one is configured.
//
// Connections are served concurrently. Shutdown stops accepting new
// connections and waits for in-flight requests up to the configured
// graceful shutdown duration.
package server
