package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	traceapi "go.opentelemetry.io/otel/trace"
)

// Logger defines the interface for logging operations in the tracer package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=tracer
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Tracer wraps the OpenTelemetry TracerProvider for the run. One span is
// created per driver case; REST calls become child spans through the
// instrumented HTTP transport.
type Tracer struct {
	tracer *trace.TracerProvider
	logger Logger
}

// NewClient creates the tracer provider, optionally wired to an OTLP/HTTP
// exporter, and installs it as the global provider.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "knn-hammer"}, log)
//	ctx, span := t.StartSpan(ctx, "ingest")
//	defer span.End()
func NewClient(cfg Config, logger Logger) (*Tracer, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			return nil, fmt.Errorf("tracer: cannot initiate exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
		logger.Info("Trace export enabled", nil, map[string]interface{}{
			"endpoint": cfg.Endpoint,
		})
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: logger}, nil
}

// Provider exposes the underlying provider, e.g. for HTTP instrumentation.
func (t *Tracer) Provider() traceapi.TracerProvider {
	return t.tracer
}

// Shutdown flushes pending spans and releases the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.tracer == nil {
		t.logger.Warn("tracer was nil during shutdown", nil, nil)
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
