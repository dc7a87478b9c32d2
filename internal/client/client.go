package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	// userAgent is the User-Agent header value sent with all API requests.
	userAgent = "chuck-cli/1.0"

	// contentTypeJSON is the Accept header value for API requests.
	contentTypeJSON = "application/json"

	// API endpoint paths.
	pathRandom     = "/jokes/random"
	pathCategories = "/jokes/categories"
	pathSearch     = "/jokes/search"
)

// Client provides access to the chucknorris.io jokes API.
// One operation call performs exactly one HTTP request: no retries, no
// caching. Failures are reported as *Error values classified by Kind.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a jokes API client from the given configuration.
// Returns an error if the configuration is nil or invalid.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchRandom retrieves one random joke, optionally restricted to a
// category; an empty category leaves the query string untouched. The decoded
// payload is returned unmodified so JSON output can reproduce it exactly. It
// must be a mapping carrying a "value" key; anything else is a KindShape
// failure.
func (c *Client) FetchRandom(ctx context.Context, category string) (map[string]any, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}

	var body any
	if err := c.get(ctx, pathRandom, params, &body); err != nil {
		return nil, err
	}

	jokeMap, ok := body.(map[string]any)
	if !ok {
		return nil, &Error{Kind: KindShape, Message: "API returned unexpected response shape"}
	}
	if _, ok := jokeMap["value"]; !ok {
		return nil, &Error{Kind: KindShape, Message: "API returned unexpected response shape"}
	}
	return jokeMap, nil
}

// FetchCategories retrieves the available joke categories as-is. An empty
// list is a valid response.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, pathCategories, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Search performs a free-text search for jokes. When the decoded payload is
// a mapping whose "result" entry is a list longer than limit, that list is
// truncated in place to its first limit entries; everything else in the
// payload is left untouched. A missing or non-list "result" is not an error
// here, callers decide how to render it. Negative limits disable truncation.
func (c *Client) Search(ctx context.Context, query string, limit int) (map[string]any, error) {
	params := url.Values{}
	params.Set("query", query)

	var body any
	if err := c.get(ctx, pathSearch, params, &body); err != nil {
		return nil, err
	}

	data, ok := body.(map[string]any)
	if !ok {
		return nil, &Error{Kind: KindShape, Message: "API returned unexpected response shape"}
	}
	if result, ok := data["result"].([]any); ok && limit >= 0 && len(result) > limit {
		data["result"] = result[:limit]
	}
	return data, nil
}

// get performs a GET against path, decodes the JSON body into result, and
// classifies failures into *Error kinds. Bodies are decoded with UseNumber
// so numeric fields survive a re-encode unchanged.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "invalid request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", contentTypeJSON)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: KindTimeout, Message: "request timed out", Cause: err}
		}
		return &Error{Kind: KindNetwork, Message: "network error", Cause: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("api request complete",
		slog.String("method", http.MethodGet),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Kind:    KindHTTPStatus,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("API request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return &Error{Kind: KindDecode, Message: "invalid JSON received from API", Cause: err}
	}
	return nil
}

// isTimeout distinguishes deadline expiry from other transport failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
