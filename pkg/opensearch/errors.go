package opensearch

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrorBody caps how much of a failed response ends up in an error message.
const maxErrorBody = 4096

// ErrBulkItems is matched by every *BulkError.
var ErrBulkItems = errors.New("opensearch: bulk request had failed items")

// ResponseError is returned for any non-2xx response.
type ResponseError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

func (e *ResponseError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("opensearch: %s %s: http %d: %s", e.Method, e.Path, e.StatusCode, body)
}

// BulkError reports items the cluster rejected inside a 200 bulk response.
type BulkError struct {
	Index       string
	Failed      int
	Total       int
	FirstType   string
	FirstReason string
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("opensearch: bulk into %s: %d of %d items failed, first: %s: %s",
		e.Index, e.Failed, e.Total, e.FirstType, e.FirstReason)
}

// Is lets errors.Is(err, ErrBulkItems) match.
func (e *BulkError) Is(target error) bool {
	return target == ErrBulkItems
}

// StatusCode extracts the HTTP status from a *ResponseError, or 0.
func StatusCode(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// IsNotFound checks if the error is an HTTP 404 from the cluster.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
