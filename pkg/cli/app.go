package cli

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/knn-hammer/pkg/config"
	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
	"github.com/Aleph-Alpha/knn-hammer/pkg/logger"
	"github.com/Aleph-Alpha/knn-hammer/pkg/metrics"
	"github.com/Aleph-Alpha/knn-hammer/pkg/minio"
	"github.com/Aleph-Alpha/knn-hammer/pkg/observability"
	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
	"github.com/Aleph-Alpha/knn-hammer/pkg/report"
	"github.com/Aleph-Alpha/knn-hammer/pkg/tracer"
)

const lifecycleTimeout = 15 * time.Second

// run holds what the fx graph hands back to the command.
type run struct {
	Driver  *hammer.Driver
	Metrics *metrics.Metrics
	Report  *report.Writer
	Logger  *logger.Logger
}

// appOptions assembles the fx graph of one run. out receives response
// bodies; logs go wherever the logger config points.
func appOptions(ctx context.Context, cfg config.Config, out io.Writer, populate *run) []fx.Option {
	opts := []fx.Option{
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			zl := &fxevent.ZapLogger{Logger: l.Zap}
			zl.UseLogLevel(zapcore.DebugLevel)
			return zl
		}),
		fx.Supply(
			cfg.Logger,
			cfg.Metrics,
			cfg.Tracer,
			cfg.Opensearch,
			cfg.Hammer,
			cfg.Report,
		),

		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		opensearch.FXModule,
		hammer.FXModule,
		report.FXModule,

		fx.Provide(
			func(l *logger.Logger) metrics.Logger { return l },
			func(l *logger.Logger) tracer.Logger { return l },
			func(l *logger.Logger) opensearch.Logger { return l },
			func(l *logger.Logger) hammer.Logger { return l },
			func(l *logger.Logger) report.Logger { return l },

			func(m *metrics.Metrics, l *logger.Logger) observability.Observer {
				return observability.Observers{m, observability.NewLogObserver(l)}
			},
			func(t *tracer.Tracer) trace.TracerProvider { return t.Provider() },
			func(t *tracer.Tracer) hammer.SpanStarter { return t },
			func(c *opensearch.Client) hammer.Engine { return c },

			fx.Annotate(
				func() io.Writer { return out },
				fx.ResultTags(`name:"output"`),
			),
		),
		fx.Populate(&populate.Driver, &populate.Metrics, &populate.Report, &populate.Logger),
	}

	if cfg.Report.BucketEnabled() {
		opts = append(opts, fx.Provide(func(l *logger.Logger) (report.Uploader, error) {
			return minio.NewClient(ctx, cfg.Report.Bucket, l)
		}))
	}
	return opts
}

// Execute runs one invocation with a fully wired application: it starts the
// lifecycle, runs the case, prints the latency summary for load cases,
// writes the report and stops the lifecycle again.
func Execute(ctx context.Context, cfg config.Config, inv hammer.Invocation, out io.Writer) (err error) {
	var r run
	app := fx.New(appOptions(ctx, cfg, out, &r)...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycleTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
		defer cancel()
		if stopErr := app.Stop(stopCtx); err == nil {
			err = stopErr
		}
	}()

	rep := &report.Report{
		Case:      inv.Case,
		Args:      inv.Args,
		Host:      cfg.Opensearch.Connection.Host,
		Secure:    cfg.Opensearch.Connection.UseSSL,
		BulkSize:  cfg.Hammer.BulkSize,
		StartedAt: time.Now(),
	}

	runErr := r.Driver.Run(ctx, inv)
	rep.Finish(time.Now(), runErr)
	rep.Operations = r.Metrics.Latencies.Snapshot()

	if hammer.IsLoadCase(inv.Case) && len(rep.Operations) > 0 {
		metrics.RenderTable(out, rep.Operations)
	}

	if writeErr := r.Report.Write(ctx, rep); writeErr != nil {
		if runErr == nil {
			return writeErr
		}
		r.Logger.Error("Writing report failed", writeErr, nil)
	}
	return runErr
}
