package opensearch

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// DefaultPort is used for plain HTTP connections.
	DefaultPort = 80

	// DefaultSecurePort is used when UseSSL is set and no port is given.
	DefaultSecurePort = 443

	// DefaultRequestTimeout bounds a single REST call, bulk flushes included.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultUsername and DefaultPassword are the demo credentials of the
	// security plugin, used when security is enabled without credentials.
	DefaultUsername = "admin"
	DefaultPassword = "admin"
)

// Config defines the top-level configuration for the search-engine client.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" ignored:"true"`
}

// ConnectionConfig contains the cluster endpoint and credentials.
type ConnectionConfig struct {
	Host string `yaml:"host" envconfig:"HAMMER_HOST"`

	// Port 0 picks DefaultPort or DefaultSecurePort depending on UseSSL.
	Port int `yaml:"port" envconfig:"HAMMER_PORT"`

	// UseSSL switches the scheme to https.
	UseSSL bool `yaml:"use_ssl" envconfig:"HAMMER_USE_SSL"`

	// InsecureSkipVerify disables certificate verification. Security-enabled
	// test clusters usually run with self-signed certificates.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" envconfig:"HAMMER_INSECURE_SKIP_VERIFY"`

	// Username and Password enable HTTP basic auth when Username is set.
	Username string `yaml:"username" envconfig:"HAMMER_USERNAME"`
	Password string `yaml:"password" envconfig:"HAMMER_PASSWORD"`

	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"HAMMER_REQUEST_TIMEOUT"`

	// Retries is the number of extra attempts for failed calls. 0 disables retrying.
	Retries int `yaml:"retries" envconfig:"HAMMER_RETRIES"`
}

// DefaultConfig returns a plain-HTTP configuration without retries.
func DefaultConfig() Config {
	return Config{
		Connection: ConnectionConfig{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// Validate ensures required fields are present.
func (c ConnectionConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("opensearch: missing host")
	}
	if _, _, err := net.SplitHostPort(c.Host); err == nil {
		return fmt.Errorf("opensearch: host %q carries a port, set the port separately", c.Host)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("opensearch: invalid port %d", c.Port)
	}
	if c.Retries < 0 {
		return fmt.Errorf("opensearch: retries must not be negative")
	}
	return nil
}

// EffectivePort resolves the zero port to the scheme default.
func (c ConnectionConfig) EffectivePort() int {
	if c.Port != 0 {
		return c.Port
	}
	if c.UseSSL {
		return DefaultSecurePort
	}
	return DefaultPort
}

// Scheme returns "https" or "http".
func (c ConnectionConfig) Scheme() string {
	if c.UseSSL {
		return "https"
	}
	return "http"
}

// BaseURL returns scheme://host:port without a trailing slash.
func (c ConnectionConfig) BaseURL() string {
	return c.Scheme() + "://" + net.JoinHostPort(c.Host, strconv.Itoa(c.EffectivePort()))
}
