package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/Aleph-Alpha/knn-hammer/pkg/metrics"
)

// Report is the JSON document written at the end of a run.
type Report struct {
	Case       string                   `json:"case"`
	Args       []string                 `json:"args"`
	Host       string                   `json:"host"`
	Secure     bool                     `json:"secure"`
	BulkSize   int                      `json:"bulk_size"`
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt time.Time                `json:"finished_at"`
	Duration   string                   `json:"duration"`
	Error      string                   `json:"error,omitempty"`
	Operations []metrics.OperationStats `json:"operations"`
}

// Finish stamps the end time and outcome.
func (r *Report) Finish(now time.Time, err error) {
	r.FinishedAt = now
	r.Duration = now.Sub(r.StartedAt).String()
	if err != nil {
		r.Error = err.Error()
	}
}

// ObjectKey is the bucket key of the report: <prefix>/<case>-<started>.json.
func (r *Report) ObjectKey(prefix string) string {
	name := fmt.Sprintf("%s-%s.json", r.Case, r.StartedAt.UTC().Format("20060102T150405Z"))
	if prefix == "" {
		return name
	}
	return path.Join(strings.Trim(prefix, "/"), name)
}

// Encode renders the report as indented JSON.
func (r *Report) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

// Uploader stores an object. *minio.Minio implements it.
type Uploader interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, contentType string, size ...int64) (int64, error)
	Bucket() string
}
