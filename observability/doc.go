// Package observability wires OpenTelemetry tracing and metrics into the
// orchestrator. NewLifecycleHook returns a ready-made hook definition that
// observes the application and records lifecycle events as span events and
// counters; the tracer and meter helpers are usable by any component.
package observability
