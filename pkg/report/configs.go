package report

import "github.com/Aleph-Alpha/knn-hammer/pkg/minio"

// Config selects where run reports go. Both sinks may be enabled at once;
// with neither set no report is written.
type Config struct {
	// File is a local path for the JSON report.
	File string `yaml:"file" envconfig:"HAMMER_REPORT_FILE"`

	// Prefix is prepended to the object key in the bucket.
	Prefix string `yaml:"prefix" envconfig:"HAMMER_REPORT_PREFIX"`

	// Bucket enables the object-store sink when its bucket name is set.
	Bucket minio.Config `yaml:"bucket" ignored:"true"`
}

// Enabled reports whether any sink is configured.
func (c Config) Enabled() bool {
	return c.File != "" || c.BucketEnabled()
}

// BucketEnabled reports whether the object-store sink is configured.
func (c Config) BucketEnabled() bool {
	return c.Bucket.Connection.BucketName != ""
}
