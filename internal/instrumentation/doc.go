// Package instrumentation provides OpenTelemetry-based metrics for the
// MCP server.
//
// The Provider owns a meter provider wired to one of three exporters
// (Prometheus pull, OTLP push, stdout for debugging) selected through
// environment configuration. The Metrics recorder exposes typed
// recording methods for tool invocations and Google API operations;
// a nil recorder is valid and records nothing, so instrumentation can
// be disabled without touching call sites.
package instrumentation
