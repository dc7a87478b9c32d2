package client

import (
	"log/slog"
	"net/http"
)

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller keeps
// responsibility for its timeout settings. A nil client is ignored.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger attaches a logger for request-level debug records. A nil
// logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
