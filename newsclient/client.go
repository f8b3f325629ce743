// Package newsclient is a thin client for the NewsAPI top-headlines and
// everything endpoints. It normalizes provider articles into types.Article.
package newsclient

import (
	"context"
	"strings"
	"time"

	"davenews/config"
	"davenews/types"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	opTopHeadlines = "top headlines"
	opSearch       = "search news"

	defaultUserAgent = "davenews/1.0"
)

// Config is the explicit client configuration. A missing APIKey does not stop
// construction; every call then fails with a ConfigurationError.
type Config struct {
	APIKey    string
	BaseURL   string
	Country   string
	Timeout   time.Duration
	UserAgent string
}

// Validate reports a ConfigurationError when the credential is missing
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &ConfigurationError{Key: "API key"}
	}
	return nil
}

// Option customizes a Client
type Option func(*Client)

// WithLogger sets the logger used for request failures
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRestyClient replaces the underlying HTTP client. The base URL, timeout
// and headers from Config are applied on top of it.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

// Client talks to the news provider
type Client struct {
	cfg  Config
	http *resty.Client
	log  *zap.Logger
}

// New creates a news client for the given configuration
func New(cfg Config, opts ...Option) *Client {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = config.DefaultCountry
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	c := &Client{
		cfg:  cfg,
		http: resty.New(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetLogger(c.log.Sugar())

	return c
}

// Validate reports whether the client is configured well enough to send requests
func (c *Client) Validate() error {
	return c.cfg.Validate()
}

// TopHeadlines fetches country-scoped top headlines, constrained to category when it is non-empty
func (c *Client) TopHeadlines(ctx context.Context, category string) ([]types.Article, error) {
	params := map[string]string{
		"country": c.cfg.Country,
	}
	if category != "" {
		params["category"] = category
	}

	articles, err := c.getArticles(ctx, opTopHeadlines, "/top-headlines", params)
	if err != nil {
		c.log.Error("error fetching news",
			zap.String("op", opTopHeadlines),
			zap.String("category", category),
			zap.Error(err),
		)
		return nil, err
	}
	return articles, nil
}

// Search runs a full-text search across all articles, newest first
func (c *Client) Search(ctx context.Context, query string) ([]types.Article, error) {
	params := map[string]string{
		"q":      query,
		"sortBy": "publishedAt",
	}

	articles, err := c.getArticles(ctx, opSearch, "/everything", params)
	if err != nil {
		c.log.Error("error searching news",
			zap.String("op", opSearch),
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}
	return articles, nil
}
