package metrics

import (
	"github.com/Aleph-Alpha/knn-hammer/pkg/observability"
)

// ObserveOperation implements observability.Observer. Every client operation
// is counted, timed, and kept for the summary table.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	if m == nil {
		return
	}

	m.requestsTotal.WithLabelValues(ctx.Operation, statusLabel(ctx.Error)).Inc()
	m.requestDuration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		m.requestBytes.WithLabelValues(ctx.Operation).Add(float64(ctx.Size))
	}
	m.Latencies.Record(ctx.Operation, ctx.Duration, ctx.Error)
}

var _ observability.Observer = (*Metrics)(nil)
