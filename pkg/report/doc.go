// Package report writes a JSON summary of a run to a local file, an
// S3-compatible bucket, or both.
package report
