// Package middleware decorates a pardna.Creator with observability.
//
// This package includes:
//   - OpenTelemetry tracing of every create call
//   - Prometheus metrics for create calls
//   - Logging and panic recovery
//
// Decorators compose with Chain; the first decorator is the outermost:
//
//	creator := middleware.Chain(graphql.New(endpoint),
//	    middleware.Recover(logger),
//	    middleware.OpenTelemetry(),
//	    middleware.Prometheus(middleware.WithNamespace("pardna")),
//	    middleware.Logging(logger),
//	)
//
// # Prometheus Metrics
//
// The Prometheus decorator collects:
//   - pardna_creates_total: create calls by status
//   - pardna_create_duration_seconds: create call latency
//   - pardna_create_errors_total: failed create calls by error type
//   - pardna_creates_in_flight: create calls currently outstanding
//   - pardna_create_participants: participants per created pardna
//
// Expose them with promhttp:
//
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// # OpenTelemetry
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. The span context is passed to the wrapped creator, so HTTP clients
// built with the request context inherit the trace.
package middleware
