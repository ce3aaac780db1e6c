package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, hammer.DefaultBulkSize, cfg.Hammer.BulkSize)
	assert.Equal(t, "90s", cfg.Hammer.SearchTimeout)
	assert.Equal(t, opensearch.DefaultRequestTimeout, cfg.Opensearch.Connection.RequestTimeout)
	assert.Zero(t, cfg.Opensearch.Connection.Retries)
	assert.Zero(t, cfg.Opensearch.Connection.Port)
	assert.True(t, cfg.Hammer.Capabilities.ModelFeatures)
	assert.False(t, cfg.Report.Enabled())
}

func TestDecodeProfile_Overlays(t *testing.T) {
	cfg := Default()
	profile := `
opensearch:
  connection:
    host: search.internal
    port: 9200
hammer:
  bulk_size: 500
  wait_timeout: 30s
  index:
    number_of_shards: 3
    number_of_replicas: 1
    knn: true
    vector_type: knn_vector
  training:
    nlist: 256
    m: 16
report:
  file: run.json
`
	require.NoError(t, DecodeProfile(strings.NewReader(profile), &cfg))

	assert.Equal(t, "search.internal", cfg.Opensearch.Connection.Host)
	assert.Equal(t, 9200, cfg.Opensearch.Connection.Port)
	assert.Equal(t, 500, cfg.Hammer.BulkSize)
	assert.Equal(t, 30*time.Second, cfg.Hammer.WaitTimeout)
	assert.Equal(t, 3, cfg.Hammer.Index.Shards)
	assert.Equal(t, 256, cfg.Hammer.Training.NList)
	assert.Equal(t, 16, cfg.Hammer.Training.M)
	assert.Equal(t, "run.json", cfg.Report.File)

	// untouched keys keep their defaults
	assert.Equal(t, "90s", cfg.Hammer.SearchTimeout)
	assert.Equal(t, "faiss", cfg.Hammer.Training.Engine)
	assert.Equal(t, 8, cfg.Hammer.Training.CodeSize)
}

func TestDecodeProfile_RejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := DecodeProfile(strings.NewReader("hammer:\n  bulksize: 5\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode profile")
}

func TestDecodeProfile_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, DecodeProfile(strings.NewReader("\n"), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvironmentWinsOverProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hammer:\n  bulk_size: 500\nlogger:\n  level: debug\n"), 0o600))

	t.Setenv("HAMMER_BULK_SIZE", "42")
	t.Setenv("HAMMER_HOST", "env-host")
	t.Setenv("HAMMER_SECURITY", "true")
	t.Setenv("HAMMER_REPORT_BUCKET", "reports")
	t.Setenv("HAMMER_WAIT_INTERVAL", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Hammer.BulkSize)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "env-host", cfg.Opensearch.Connection.Host)
	assert.True(t, cfg.Hammer.Capabilities.Security)
	assert.Equal(t, "reports", cfg.Report.Bucket.Connection.BucketName)
	assert.Equal(t, 5*time.Second, cfg.Hammer.WaitInterval)
	assert.True(t, cfg.Report.Enabled())
}

func TestLoad_MissingProfile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open profile")
}

func TestLoad_BadEnvironment(t *testing.T) {
	t.Setenv("HAMMER_BULK_SIZE", "lots")
	_, err := Load("")
	require.Error(t, err)
}

func TestResolve_Security(t *testing.T) {
	cfg := Default()
	cfg.Opensearch.Connection.Host = "localhost"
	cfg.Hammer.Capabilities.Security = true
	cfg.Resolve()

	conn := cfg.Opensearch.Connection
	assert.True(t, conn.UseSSL)
	assert.Equal(t, "admin", conn.Username)
	assert.Equal(t, "admin", conn.Password)
	assert.Equal(t, "https://localhost:443", conn.BaseURL())
	require.NoError(t, cfg.Validate())
}

func TestResolve_UseSSLImpliesSecurity(t *testing.T) {
	cfg := Default()
	cfg.Opensearch.Connection.Host = "localhost"
	cfg.Opensearch.Connection.UseSSL = true
	cfg.Resolve()

	conn := cfg.Opensearch.Connection
	assert.True(t, cfg.Hammer.Capabilities.Security)
	assert.Equal(t, "admin", conn.Username)
	assert.Equal(t, "admin", conn.Password)
	assert.Equal(t, "https://localhost:443", conn.BaseURL())
}

func TestResolve_KeepsExplicitCredentials(t *testing.T) {
	cfg := Default()
	cfg.Hammer.Capabilities.Security = true
	cfg.Opensearch.Connection.Username = "bench"
	cfg.Opensearch.Connection.Password = "s3cret"
	cfg.Resolve()

	assert.Equal(t, "bench", cfg.Opensearch.Connection.Username)
	assert.Equal(t, "s3cret", cfg.Opensearch.Connection.Password)
}

func TestResolve_PlainByDefault(t *testing.T) {
	cfg := Default()
	cfg.Opensearch.Connection.Host = "localhost"
	cfg.Resolve()

	assert.False(t, cfg.Opensearch.Connection.UseSSL)
	assert.Empty(t, cfg.Opensearch.Connection.Username)
	assert.Equal(t, "http://localhost:80", cfg.Opensearch.Connection.BaseURL())
}

func TestValidate_RequiresHost(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate())
}
