package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Put uploads an object to the configured bucket and returns the stored size.
func (m *Minio) Put(ctx context.Context, objectKey string, reader io.Reader, contentType string, size ...int64) (int64, error) {
	actualSize := unknownSize
	if len(size) > 0 && size[0] != 0 {
		actualSize = size[0]
	}

	response, err := m.Client.PutObject(ctx, m.cfg.Connection.BucketName, objectKey, reader, actualSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to put object %s: %w", objectKey, err)
	}
	return response.Size, nil
}

// Get retrieves an object from the bucket and returns its contents. Runs only
// write reports; Get is the read-back the integration tests verify uploads with.
func (m *Minio) Get(ctx context.Context, objectKey string) ([]byte, error) {
	reader, err := m.Client.GetObject(ctx, m.cfg.Connection.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer func(reader io.ReadCloser) {
		if err := reader.Close(); err != nil {
			m.logger.Error("failed to close object reader", err, map[string]interface{}{})
		}
	}(reader)

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object data: %w", err)
	}
	return data, nil
}
