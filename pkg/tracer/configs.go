package tracer

// Config controls the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"HAMMER_TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env" envconfig:"HAMMER_TRACER_APP_ENV"`

	// EnableExport turns on the OTLP/HTTP exporter. Without it spans are
	// created but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"HAMMER_TRACER_ENABLE_EXPORT"`

	// Endpoint is the OTLP/HTTP collector URL, e.g. "http://localhost:4318".
	// Empty falls back to the standard OTEL_EXPORTER_OTLP_* variables.
	Endpoint string `yaml:"endpoint" envconfig:"HAMMER_TRACER_ENDPOINT"`
}

// DefaultConfig returns a non-exporting configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName: "knn-hammer",
		AppEnv:      "local",
	}
}
