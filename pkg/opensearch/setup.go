package opensearch

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/knn-hammer/pkg/observability"
)

// Logger defines the interface for logging operations in the opensearch package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=opensearch
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client is a REST client for the search engine and its k-NN plugin.
//
// One Client is created per run and reused sequentially for every call.
// All methods are safe for concurrent use, but the driver never needs that.
type Client struct {
	baseURL    string
	cfg        ConnectionConfig
	httpClient *http.Client
	logger     Logger
	observer   observability.Observer
}

// NewClient validates the configuration and builds the HTTP stack:
// TLS settings, an otelhttp transport for client spans, and a retrying
// client whose retry budget is Config.Connection.Retries.
//
// tp may be nil, in which case the global tracer provider is used.
func NewClient(cfg Config, logger Logger, tp trace.TracerProvider) (*Client, error) {
	conn := cfg.Connection
	if err := conn.Validate(); err != nil {
		return nil, err
	}
	if conn.RequestTimeout <= 0 {
		conn.RequestTimeout = DefaultRequestTimeout
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	c := &Client{
		baseURL:    conn.BaseURL(),
		cfg:        conn,
		httpClient: newHTTPClient(conn, tp),
		logger:     logger,
	}

	logger.Info("Connecting to cluster", nil, map[string]interface{}{
		"url":     c.baseURL,
		"secure":  conn.UseSSL,
		"auth":    conn.Username != "",
		"retries": conn.Retries,
	})
	return c, nil
}

func newHTTPClient(conn ConnectionConfig, tp trace.TracerProvider) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if conn.UseSSL {
		base.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: conn.InsecureSkipVerify, //nolint:gosec // test clusters use self-signed certificates
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = conn.Retries
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(base,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
			}),
		),
		Timeout: conn.RequestTimeout,
	}

	return retryClient.StandardClient()
}

// WithObserver attaches an observer that is notified of every REST call.
// It returns the same instance for chaining.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// BaseURL returns the cluster URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.logger.Info("closing cluster client...", nil, nil)
	c.httpClient.CloseIdleConnections()
	return nil
}
