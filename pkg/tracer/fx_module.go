package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Tracer and flushes it on shutdown.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer provider down when the app stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer...", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
