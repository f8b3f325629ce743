// Package config loads davenews settings from the environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Validation errors. A missing API key is not a load error; the news client
// reports it per call as a ConfigurationError.
var (
	ErrEmptyBaseURL    = errors.New("news.base_url must not be empty")
	ErrEmptyCountry    = errors.New("news.country must not be empty")
	ErrNegativeTimeout = errors.New("news.http_timeout must not be negative")
	ErrEmptyPort       = errors.New("server.port must not be empty")
	ErrInvalidLogLevel = errors.New("log.level must be one of: debug, info, warn, error")
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Config is the full application configuration
type Config struct {
	News   NewsConfig
	Server ServerConfig
	Log    LogConfig
}

// NewsConfig holds the news provider settings
type NewsConfig struct {
	APIKey      string
	BaseURL     string
	Country     string
	HTTPTimeout time.Duration
}

// ServerConfig holds the web feed settings
type ServerConfig struct {
	Port string
	// RefreshSchedule is a cron expression; empty disables scheduled refresh
	RefreshSchedule string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from the environment and, when path is non-empty,
// from the given config file (any format viper understands). Environment
// variables win over file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		News: NewsConfig{
			APIKey:      strings.TrimSpace(v.GetString("news.api_key")),
			BaseURL:     strings.TrimRight(strings.TrimSpace(v.GetString("news.base_url")), "/"),
			Country:     strings.ToLower(strings.TrimSpace(v.GetString("news.country"))),
			HTTPTimeout: v.GetDuration("news.http_timeout"),
		},
		Server: ServerConfig{
			Port:            strings.TrimSpace(v.GetString("server.port")),
			RefreshSchedule: strings.TrimSpace(v.GetString("server.refresh_schedule")),
		},
		Log: LogConfig{
			Level: strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
			File:  strings.TrimSpace(v.GetString("log.file")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and well formed
func (c *Config) Validate() error {
	if c.News.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	if c.News.Country == "" {
		return ErrEmptyCountry
	}
	if c.News.HTTPTimeout < 0 {
		return ErrNegativeTimeout
	}
	if c.Server.Port == "" {
		return ErrEmptyPort
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("%w (got %q)", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// Addr returns the listen address for the web feed
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("news.base_url", DefaultBaseURL)
	v.SetDefault("news.country", DefaultCountry)
	v.SetDefault("news.http_timeout", DefaultHTTPTimeout)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.refresh_schedule", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
}

func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"news.api_key", EnvAPIKey, EnvLegacyAPIKey},
		{"news.base_url", EnvBaseURL},
		{"news.country", EnvCountry},
		{"news.http_timeout", EnvHTTPTimeout},
		{"server.port", EnvPort},
		{"server.refresh_schedule", EnvRefreshSchedule},
		{"log.level", EnvLogLevel},
		{"log.file", EnvLogFile},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("bind env for %s: %w", b[0], err)
		}
	}
	return nil
}
