package hammer

import (
	"io"
	"os"

	"go.uber.org/fx"
)

// FXModule provides *Driver.
//
// Dependencies required by this module:
//   - a hammer.Config
//   - a hammer.Engine (usually *opensearch.Client annotated as Engine)
//   - a hammer.Logger
//
// Optional:
//   - an io.Writer named "output" for response bodies (defaults to os.Stdout)
//   - a hammer.SpanStarter for per-case spans
var FXModule = fx.Module("hammer",
	fx.Provide(
		NewDriverWithDI,
	),
)

// DriverParams groups the dependencies needed to create a Driver.
type DriverParams struct {
	fx.In

	Config Config
	Engine Engine
	Logger Logger
	Output io.Writer   `name:"output" optional:"true"`
	Tracer SpanStarter `optional:"true"`
}

// NewDriverWithDI creates a Driver from injected dependencies.
func NewDriverWithDI(params DriverParams) (*Driver, error) {
	out := params.Output
	if out == nil {
		out = os.Stdout
	}
	driver, err := NewDriver(params.Config, params.Engine, params.Logger, out)
	if err != nil {
		return nil, err
	}
	if params.Tracer != nil {
		driver.WithTracer(params.Tracer)
	}
	return driver, nil
}
