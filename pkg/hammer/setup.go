package hammer

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
	"github.com/Aleph-Alpha/knn-hammer/pkg/vectors"
)

// Logger defines the interface for logging operations in the hammer package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=hammer
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Engine is the subset of the search-engine API the driver uses.
// *opensearch.Client implements it.
type Engine interface {
	Bulk(ctx context.Context, index string, docs []opensearch.BulkDocument) (*opensearch.BulkResult, error)
	Refresh(ctx context.Context, index string) error
	CreateIndex(ctx context.Context, index string, body any) ([]byte, error)
	DeleteIndex(ctx context.Context, index string) ([]byte, error)
	Search(ctx context.Context, index string, body any, timeout string) ([]byte, error)
	KNNStats(ctx context.Context) ([]byte, error)
	CatNodes(ctx context.Context) ([]byte, error)
	CatIndices(ctx context.Context) ([]byte, error)
	TrainModel(ctx context.Context, modelID string, body any) ([]byte, error)
	GetModel(ctx context.Context, modelID string) ([]byte, error)
	DeleteModel(ctx context.Context, modelID string) ([]byte, error)
}

// SpanStarter opens a span per case. *tracer.Tracer implements it.
type SpanStarter interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
}

// Driver maps one invocation to its sequence of REST calls. It is stateless
// between cases apart from the vector generator and the rate limiter.
type Driver struct {
	cfg     Config
	engine  Engine
	logger  Logger
	out     io.Writer
	gen     *vectors.Generator
	limiter *rate.Limiter
	tracer  SpanStarter
}

// NewDriver validates cfg and returns a Driver writing responses to out.
func NewDriver(cfg Config, engine Engine, logger Logger, out io.Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SearchTimeout == "" {
		cfg.SearchTimeout = DefaultSearchTimeout
	}
	if cfg.QueryProgressEvery <= 0 {
		cfg.QueryProgressEvery = DefaultQueryProgressEvery
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	return &Driver{
		cfg:     cfg,
		engine:  engine,
		logger:  logger,
		out:     out,
		gen:     vectors.NewGenerator(cfg.Seed),
		limiter: limiter,
	}, nil
}

// WithTracer attaches a span starter. It returns the same instance for chaining.
func (d *Driver) WithTracer(t SpanStarter) *Driver {
	d.tracer = t
	return d
}

// throttle blocks until the rate limiter admits the next call.
func (d *Driver) throttle(ctx context.Context) error {
	return d.limiter.Wait(ctx)
}
