package opensearch

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/knn-hammer/pkg/observability"
)

// FXModule provides *Client and closes it on shutdown.
//
// Dependencies required by this module:
//   - an opensearch.Config
//   - an opensearch.Logger
//
// Optional:
//   - an observability.Observer, attached to the client
//   - a trace.TracerProvider for the HTTP instrumentation
var FXModule = fx.Module("opensearch",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// ClientParams groups the dependencies needed to create a Client.
type ClientParams struct {
	fx.In

	Config         Config
	Logger         Logger
	Observer       observability.Observer `optional:"true"`
	TracerProvider trace.TracerProvider   `optional:"true"`
}

// NewClientWithDI creates a Client from injected dependencies and attaches the
// observer when one is provided.
func NewClientWithDI(params ClientParams) (*Client, error) {
	client, err := NewClient(params.Config, params.Logger, params.TracerProvider)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	return client, nil
}

// RegisterClientLifecycle closes idle connections on shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
