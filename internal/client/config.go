package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"chuck/internal/config"
)

// Supported URL schemes.
const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
)

// Config holds the connection parameters for the jokes API.
type Config struct {
	// BaseURL is the root of the jokes API (e.g., "https://api.chucknorris.io").
	// Must include the scheme (http:// or https://).
	BaseURL string

	// Timeout is the maximum duration for a single request.
	// Must be a positive duration.
	Timeout time.Duration
}

// DefaultConfig returns a Config pointing at the public chucknorris.io API.
func DefaultConfig() Config {
	return Config{
		BaseURL: config.DefaultBaseURL,
		Timeout: config.DefaultTimeoutSeconds * time.Second,
	}
}

// Validate returns an error if any field cannot produce a working client.
//
// Validation rules:
//   - BaseURL must not be empty
//   - BaseURL must start with http:// or https://
//   - Timeout must be positive (greater than zero)
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("invalid configuration: base URL cannot be empty")
	}

	if !strings.HasPrefix(c.BaseURL, schemeHTTP) && !strings.HasPrefix(c.BaseURL, schemeHTTPS) {
		return fmt.Errorf("invalid configuration: base URL must have http:// or https:// scheme, got %q", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("invalid configuration: timeout must be positive, got %v", c.Timeout)
	}

	return nil
}
