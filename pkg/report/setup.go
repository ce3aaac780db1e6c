package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// Logger is the subset of the logger used by the writer.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=report
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
}

// Writer delivers reports to the configured sinks.
type Writer struct {
	cfg      Config
	uploader Uploader
	logger   Logger
}

// NewWriter returns a Writer. uploader may be nil when no bucket is configured.
func NewWriter(cfg Config, uploader Uploader, logger Logger) *Writer {
	return &Writer{cfg: cfg, uploader: uploader, logger: logger}
}

// Write encodes r once and sends it to every enabled sink.
func (w *Writer) Write(ctx context.Context, r *Report) error {
	if !w.cfg.Enabled() {
		return nil
	}

	body, err := r.Encode()
	if err != nil {
		return err
	}

	if w.cfg.File != "" {
		if err := os.WriteFile(w.cfg.File, body, 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", w.cfg.File, err)
		}
		w.logger.Info("Report written", nil, map[string]interface{}{"file": w.cfg.File})
	}

	if w.cfg.BucketEnabled() {
		if w.uploader == nil {
			return fmt.Errorf("report bucket %s configured without an uploader", w.cfg.Bucket.Connection.BucketName)
		}
		key := r.ObjectKey(w.cfg.Prefix)
		if _, err := w.uploader.Put(ctx, key, bytes.NewReader(body), "application/json", int64(len(body))); err != nil {
			return fmt.Errorf("upload report: %w", err)
		}
		w.logger.Info("Report uploaded", nil, map[string]interface{}{
			"bucket": w.uploader.Bucket(),
			"key":    key,
		})
	}
	return nil
}
