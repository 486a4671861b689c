// Package httpserver wraps http.Server with environment-driven configuration,
// graceful shutdown on SIGINT/SIGTERM or context cancellation, and a probe
// handler for liveness and readiness checks.
package httpserver
