package config

import "time"

// News provider defaults
const (
	// DefaultBaseURL is the NewsAPI v2 root
	DefaultBaseURL = "https://newsapi.org/v2"

	// DefaultCountry scopes top headlines
	DefaultCountry = "us"

	// DefaultHTTPTimeout bounds a single provider request. Zero disables the timeout.
	DefaultHTTPTimeout = 15 * time.Second
)

// Server defaults
const (
	// DefaultPort is the web feed listen port
	DefaultPort = "8080"

	// ShutdownTimeout bounds graceful server shutdown
	ShutdownTimeout = 10 * time.Second
)

// Logging defaults
const (
	DefaultLogLevel = "info"

	// DefaultTUILogFile keeps logs off the terminal while the TUI owns it
	DefaultTUILogFile = "davenews.log"
)

// Environment variable names
const (
	EnvAPIKey          = "NEWS_API_KEY"
	EnvLegacyAPIKey    = "NEXT_PUBLIC_NEWS_API_KEY"
	EnvBaseURL         = "NEWS_BASE_URL"
	EnvCountry         = "NEWS_COUNTRY"
	EnvHTTPTimeout     = "NEWS_HTTP_TIMEOUT"
	EnvPort            = "PORT"
	EnvRefreshSchedule = "REFRESH_SCHEDULE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFile         = "LOG_FILE"
)
