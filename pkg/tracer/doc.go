// Package tracer provides OpenTelemetry tracing for knn-hammer runs.
//
// NewClient installs a global TracerProvider. The driver opens one span per
// case ("ingest", "search", "train", ...) and the opensearch client's
// otelhttp transport adds a client span for every REST call beneath it, so
// a slow bulk flush or query shows up directly in the trace of the run.
//
// Export is off by default. Enable it with:
//
//	HAMMER_TRACER_ENABLE_EXPORT=true
//	HAMMER_TRACER_ENDPOINT=http://localhost:4318
//
// or the --trace-export flag. When the endpoint is empty the exporter honours
// the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
package tracer
