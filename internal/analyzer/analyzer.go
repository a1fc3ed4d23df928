// Package analyzer is a client for the Candidate Data Analyzer HTTP API.
// The service exposes one lookup endpoint per candidate source (github,
// portfolio, instagram) plus a resume upload endpoint, all guarded by a
// static API key header.
package analyzer

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "spigell/candidate-scout (spigelly@gmail.com)"

	defaultTimeout = 10 * time.Second
)

// Config carries the injected client settings. Nothing here is compiled-in:
// tests point BaseURL at an httptest server, deployments at the real service.
type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(logger *zap.Logger, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey: cfg.APIKey,
		APIURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}
