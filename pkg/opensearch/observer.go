package opensearch

import (
	"time"

	"github.com/Aleph-Alpha/knn-hammer/pkg/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// resource is the index name or model id.
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "opensearch",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
