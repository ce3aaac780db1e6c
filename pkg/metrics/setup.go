package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry, the HTTP server exposing it and the request
// metrics every REST call of a run is recorded into.
type Metrics struct {
	// Server exposes /metrics. It is only started when Config.Address is set.
	Server *http.Server

	// Registry is isolated per run to prevent metric name collisions.
	Registry *prometheus.Registry

	// Latencies keeps raw durations for the end-of-run summary table.
	Latencies *LatencyRecorder

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestBytes    *prometheus.CounterVec
}

// NewMetrics creates the registry, registers the request metrics and
// prepares (but does not start) the HTTP server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:  registry,
		Latencies: NewLatencyRecorder(),
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total", "Total number of REST calls issued against the cluster", []string{"operation", "status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds", "Duration of REST calls in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.requestBytes = createCounterVec(cfg.Namespace, "request_bytes_total", "Request payload bytes sent to the cluster", []string{"operation"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.requestBytes,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}
