package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	contentTypeJSON   = "application/json"
	contentTypeNDJSON = "application/x-ndjson"
)

// call describes one REST round trip.
type call struct {
	operation   string
	resource    string
	method      string
	path        string
	query       url.Values
	contentType string
	body        []byte

	// metadata is handed to the observer as is.
	metadata map[string]interface{}
}

// jsonCall marshals body (if any) and prepares a JSON call.
func jsonCall(operation, resource, method, path string, body any) (call, error) {
	c := call{operation: operation, resource: resource, method: method, path: path}
	if body == nil {
		return c, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return c, fmt.Errorf("encode %s request: %w", operation, err)
	}
	c.body = data
	c.contentType = contentTypeJSON
	return c, nil
}

// do executes the call, reports it to the observer, and returns the response
// body. Any non-2xx status becomes a *ResponseError.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, cl)
	duration := time.Since(start)

	c.observeOperation(cl.operation, cl.resource, duration, err, int64(len(cl.body)), cl.metadata)

	if err != nil {
		c.logger.Debug("request failed", err, map[string]interface{}{
			"operation": cl.operation,
			"path":      cl.path,
		})
		return nil, err
	}
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, cl call) ([]byte, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var reader io.Reader
	if cl.body != nil {
		reader = bytes.NewReader(cl.body)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", cl.operation, err)
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if c.cfg.Username != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opensearch: %s %s: %w", cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("opensearch: read %s response: %w", cl.operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Method:     cl.method,
			Path:       cl.path,
			Body:       data,
		}
	}
	return data, nil
}

// escape builds a path from segments, escaping each one.
func escape(segments ...string) string {
	var b bytes.Buffer
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
