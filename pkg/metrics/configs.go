package metrics

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens, e.g. ":9090".
	//
	// Empty disables the server; metrics are still collected for the
	// end-of-run summary.
	Address string `yaml:"address" envconfig:"HAMMER_METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"HAMMER_METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace sets a global prefix for all metrics registered by this service.
	//
	// Example:
	//   Namespace: "hammer"
	//   → Metric name becomes "hammer_requests_total"
	Namespace string `yaml:"namespace" envconfig:"HAMMER_METRICS_NAMESPACE"`

	// ServiceName is added as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"HAMMER_METRICS_SERVICE_NAME"`
}

// DefaultConfig returns a configuration with the server disabled.
func DefaultConfig() Config {
	return Config{
		EnableDefaultCollectors: true,
		Namespace:               "hammer",
		ServiceName:             "knn-hammer",
	}
}
