package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file operations so tests can inject fixtures.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem against the actual filesystem.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// configSearchPaths are the locations Load checks for config.yml, first
// match wins.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
	"../config.yml",
}

// envSearchPaths are the locations Load checks for a .env file.
var envSearchPaths = []string{
	"./.env",
	"../.env",
}

// envBindings maps config keys to the environment variables that override
// them. Variables are bound explicitly so env-only values survive
// unmarshalling.
var envBindings = map[string]string{
	"consumer_key":    "VIKING_CONSUMER_KEY",
	"consumer_secret": "VIKING_CONSUMER_SECRET",
	"format":          "VIKING_FORMAT",
	"base_url":        "VIKING_BASE_URL",
	"timeout":         "VIKING_TIMEOUT",
	"log.level":       "VIKING_LOG_LEVEL",
	"log.format":      "VIKING_LOG_FORMAT",
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// Option is a functional option for Load.
type Option func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path, skipping the search.
func WithConfigFile(path string) Option {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path, skipping the search.
func WithEnvFile(path string) Option {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads settings from config.yml, .env, and the environment.
//
// Precedence, lowest to highest: config.yml values, values loaded into the
// environment from .env, VIKING_-prefixed environment variables already
// set. Missing files are not errors; a config.yml that exists but cannot
// be parsed is.
func Load(opts ...Option) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem, configSearchPaths)
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem, envSearchPaths)
	}

	v := viper.New()

	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	for key, env := range envBindings {
		if val, ok := os.LookupEnv(env); ok {
			v.Set(key, val)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	cfg := s.Viking()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func findFirst(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
