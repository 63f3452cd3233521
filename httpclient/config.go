package httpclient

import (
	"fmt"
	"time"
)

const (
	defaultName         = "http"
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 10 << 20
)

// Config configures the request executor.
type Config struct {
	// Name identifies the executor in logs, spans and metrics. Defaults to "http".
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout bounds each request, including reading the body. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxBodyBytes caps how much of a response body is read. Defaults to 10 MiB.
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`

	// StrictStatus resolves non-2xx responses as ErrCodeStatus failures
	// instead of decoding them.
	StrictStatus bool `yaml:"strict_status" mapstructure:"strict_status"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("httpclient: max_body_bytes must be positive")
	}
	return nil
}
