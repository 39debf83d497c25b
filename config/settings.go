package config

import (
	"time"

	"github.com/mobilevikings/viking-go/logger"
	"github.com/mobilevikings/viking-go/viking"
)

// Settings is the file shape of config.yml.
type Settings struct {
	ConsumerKey    string        `mapstructure:"consumer_key"`
	ConsumerSecret string        `mapstructure:"consumer_secret"`
	Format         string        `mapstructure:"format"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Log            LogSettings   `mapstructure:"log"`
}

// LogSettings configures the client's logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Viking converts the settings into a client configuration. The logger is
// not attached here; use NewClient for a fully wired client.
func (s *Settings) Viking() viking.Config {
	return viking.Config{
		ConsumerKey:    s.ConsumerKey,
		ConsumerSecret: s.ConsumerSecret,
		Format:         s.Format,
		BaseURL:        s.BaseURL,
		Timeout:        s.Timeout,
	}
}

// Logger converts the log settings into a logger configuration.
func (s *Settings) Logger() logger.Config {
	return logger.Config{
		Level:  s.Log.Level,
		Format: s.Log.Format,
	}
}

// NewClient builds an API client from the settings, logger included.
func (s *Settings) NewClient() (*viking.Client, error) {
	cfg := s.Viking()
	cfg.Logger = logger.New(s.Logger(), "viking")
	return viking.New(cfg)
}
