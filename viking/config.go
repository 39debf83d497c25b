package viking

import (
	"time"

	"github.com/mobilevikings/viking-go/logger"
	"github.com/mobilevikings/viking-go/resilience"
	"github.com/mobilevikings/viking-go/validation"
)

// Supported output formats of the API.
const (
	FormatJSON   = "json"
	FormatXML    = "xml"
	FormatYAML   = "yaml"
	FormatPickle = "pickle"
)

// CallbackOutOfBand asks the Mobile Vikings site to display the
// verification code to the user instead of redirecting.
const CallbackOutOfBand = "oob"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://mobilevikings.com:443/api/2.0"

const defaultTimeout = 30 * time.Second

// Config configures an API client.
type Config struct {
	// ConsumerKey identifies the application consuming data from the API.
	ConsumerKey string `yaml:"consumer_key" mapstructure:"consumer_key" validate:"required"`

	// ConsumerSecret is the secret corresponding to the consumer key.
	ConsumerSecret string `yaml:"consumer_secret" mapstructure:"consumer_secret" validate:"required"`

	// Format is the default output format for API calls. Defaults to "json".
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json xml yaml pickle"`

	// BaseURL overrides the API root. Defaults to the production API.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the HTTP request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are extra headers sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry enables retrying of failed calls. Nil (the default) never
	// retries; retry policy is the caller's responsibility.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-" validate:"-"`

	// RateLimiter enables client-side rate limiting. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig `yaml:"-" mapstructure:"-" validate:"-"`

	// Logger receives structured logs for every call. Nil logs nothing.
	Logger *logger.Logger `yaml:"-" mapstructure:"-" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

// oauthURL builds one of the three OAuth endpoint URLs.
func (c *Config) oauthURL(name string) string {
	return c.BaseURL + "/oauth/" + name + "/"
}
