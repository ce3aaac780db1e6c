// Package observability defines the hook through which clients report the
// operations they perform. Metrics and tracing adapters implement Observer.
package observability

import "time"

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the client that performed the operation, e.g. "opensearch".
	Component string

	// Operation is the logical operation name, e.g. "bulk" or "search".
	Operation string

	// Resource is the primary target, usually an index or model id.
	Resource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the request payload size in bytes, or an item count where
	// bytes are not meaningful.
	Size int64

	// Metadata holds free-form additional attributes.
	Metadata map[string]interface{}
}

// Observer receives an OperationContext for every operation a client performs.
// Implementations must be cheap; they are called inline on the request path.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// Observers fans a single operation out to several observers.
type Observers []Observer

// ObserveOperation implements Observer.
func (o Observers) ObserveOperation(ctx OperationContext) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveOperation(ctx)
		}
	}
}
