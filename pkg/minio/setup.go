package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Logger defines the interface for logging operations within the MinIO client.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=minio
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Minio is an object-store client bound to one bucket.
type Minio struct {
	// Client is the standard MinIO client for high-level operations
	Client *minio.Client

	cfg    Config
	logger Logger
}

// NewClient connects to MinIO and ensures the configured bucket exists.
//
// Example:
//
//	client, err := minio.NewClient(ctx, config, myLogger)
//	if err != nil {
//	    return fmt.Errorf("failed to initialize MinIO client: %w", err)
//	}
func NewClient(ctx context.Context, cfg Config, logger Logger) (*Minio, error) {
	client, err := connectToMinio(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to minio", err, map[string]interface{}{
			"endpoint": cfg.Connection.Endpoint,
			"region":   cfg.Connection.Region,
			"secure":   cfg.Connection.UseSSL,
			"bucket":   cfg.Connection.BucketName,
		})
		return nil, err
	}

	m := &Minio{
		Client: client,
		cfg:    cfg,
		logger: logger,
	}

	if err := m.ensureBucketExists(ctx); err != nil {
		logger.Error("failed to verify bucket", err, map[string]interface{}{
			"endpoint": cfg.Connection.Endpoint,
			"bucket":   cfg.Connection.BucketName,
		})
		return nil, err
	}

	return m, nil
}

// Bucket returns the configured bucket name.
func (m *Minio) Bucket() string {
	return m.cfg.Connection.BucketName
}

func connectToMinio(cfg Config, logger Logger) (*minio.Client, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}

	logger.Info("Connecting to MinIO", nil, map[string]interface{}{
		"endpoint": cfg.Connection.Endpoint,
		"region":   cfg.Connection.Region,
		"secure":   cfg.Connection.UseSSL,
	})

	client, err := minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ensureBucketExists checks if the configured bucket exists and creates it if necessary.
func (m *Minio) ensureBucketExists(ctx context.Context) error {
	bucketName := m.cfg.Connection.BucketName
	if bucketName == "" {
		return fmt.Errorf("bucket name is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, bucketOpTimeout)
	defer cancel()

	exists, err := m.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists, bucket: %v, err: %w", bucketName, err)
	}

	if !exists {
		m.logger.Info("Bucket does not exist, creating it", nil, map[string]interface{}{
			"bucket": bucketName,
			"region": m.cfg.Connection.Region,
		})

		err = m.Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{
			Region: m.cfg.Connection.Region,
		})
		if err != nil {
			return err
		}

		m.logger.Info("Successfully created bucket", nil, map[string]interface{}{
			"bucket": bucketName,
		})
	}

	return nil
}
