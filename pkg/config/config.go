package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/knn-hammer/pkg/hammer"
	"github.com/Aleph-Alpha/knn-hammer/pkg/logger"
	"github.com/Aleph-Alpha/knn-hammer/pkg/metrics"
	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
	"github.com/Aleph-Alpha/knn-hammer/pkg/report"
	"github.com/Aleph-Alpha/knn-hammer/pkg/tracer"
)

// Config aggregates the configuration of every component of a run.
type Config struct {
	Logger     logger.Config     `yaml:"logger"`
	Metrics    metrics.Config    `yaml:"metrics"`
	Tracer     tracer.Config     `yaml:"tracer"`
	Opensearch opensearch.Config `yaml:"opensearch"`
	Hammer     hammer.Config     `yaml:"hammer"`
	Report     report.Config     `yaml:"report"`
}

// Default returns the built-in configuration: plain HTTP on port 80, bulk
// size 300, 90s search timeout, no retries, model features enabled.
func Default() Config {
	cfg := Config{
		Logger:     logger.DefaultConfig(),
		Metrics:    metrics.DefaultConfig(),
		Tracer:     tracer.DefaultConfig(),
		Opensearch: opensearch.DefaultConfig(),
		Hammer:     hammer.DefaultConfig(),
	}
	// security-enabled test clusters run with self-signed certificates
	cfg.Opensearch.Connection.InsecureSkipVerify = true
	return cfg
}

// Load builds the configuration from the defaults, the optional YAML profile
// at path and the HAMMER_* environment, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadProfile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadProfile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadProfile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	return DecodeProfile(f, cfg)
}

// DecodeProfile overlays a YAML document onto cfg. Unknown keys are rejected.
func DecodeProfile(r io.Reader, cfg *Config) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode profile: %w", err)
	}
	return nil
}

// ApplyEnv overlays the HAMMER_* environment variables onto cfg. Each
// component struct is processed on its own so the variable names are exactly
// the envconfig tags.
func ApplyEnv(cfg *Config) error {
	targets := []interface{}{
		&cfg.Logger,
		&cfg.Metrics,
		&cfg.Tracer,
		&cfg.Opensearch.Connection,
		&cfg.Hammer,
		&cfg.Hammer.Capabilities,
		&cfg.Report,
		&cfg.Report.Bucket.Connection,
	}
	for _, target := range targets {
		if err := envconfig.Process("", target); err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
	}
	return nil
}

// Resolve derives dependent values once every source has been applied: the
// security capability switches the connection to TLS with basic auth, and
// the service name is shared by logger, metrics and tracer unless they set
// their own.
func (c *Config) Resolve() {
	conn := &c.Opensearch.Connection
	if conn.UseSSL {
		c.Hammer.Capabilities.Security = true
	}
	if c.Hammer.Capabilities.Security {
		conn.UseSSL = true
		if conn.Username == "" {
			conn.Username = opensearch.DefaultUsername
			if conn.Password == "" {
				conn.Password = opensearch.DefaultPassword
			}
		}
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = c.Logger.ServiceName
	}
	if c.Tracer.ServiceName == "" {
		c.Tracer.ServiceName = c.Logger.ServiceName
	}
}

// Validate checks the parts of the configuration a run cannot start without.
func (c Config) Validate() error {
	if err := c.Opensearch.Connection.Validate(); err != nil {
		return err
	}
	return c.Hammer.Validate()
}
