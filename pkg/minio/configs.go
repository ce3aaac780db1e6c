package minio

import "time"

const (
	unknownSize int64 = -1

	// bucketOpTimeout bounds the bucket check and creation during NewClient.
	bucketOpTimeout = 10 * time.Second
)

// Config defines the top-level configuration for MinIO.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" ignored:"true"`
}

// ConnectionConfig contains MinIO server connection details.
type ConnectionConfig struct {
	Endpoint        string `yaml:"endpoint" envconfig:"HAMMER_REPORT_S3_ENDPOINT"`           // MinIO server endpoint, e.g., "localhost:9000"
	AccessKeyID     string `yaml:"access_key_id" envconfig:"HAMMER_REPORT_S3_ACCESS_KEY"`     // MinIO access key
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"HAMMER_REPORT_S3_SECRET_KEY"` // MinIO secret key
	UseSSL          bool   `yaml:"use_ssl" envconfig:"HAMMER_REPORT_S3_USE_SSL"`              // Use SSL (true for "https", false for "http")
	BucketName      string `yaml:"bucket" envconfig:"HAMMER_REPORT_BUCKET"`                   // Bucket the reports are written to
	Region          string `yaml:"region" envconfig:"HAMMER_REPORT_S3_REGION"`                // Region for the bucket (e.g., "us-east-1")
}
