package httpclient

import (
	"fmt"
	"time"

	"github.com/mobilevikings/viking-go/resilience"
	"github.com/mobilevikings/viking-go/version"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP transport.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent is sent with every request. Defaults to the library version.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Signer signs outbound requests. Nil sends requests unsigned.
	Signer Signer `yaml:"-" mapstructure:"-"`

	// Classifier inspects completed responses and may convert one into an
	// error. Nil passes every response through untouched.
	Classifier func(*Response) error `yaml:"-" mapstructure:"-"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`

	// RateLimiter configures client-side rate limiting. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}
