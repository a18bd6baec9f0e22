// Package omdb provides a client for the OMDb API.
package omdb

import (
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lepinkainen/moviefav/internal/ratelimit"
)

const (
	DefaultBaseURL       = "https://www.omdbapi.com"
	defaultTimeout       = 10 * time.Second
	defaultRetryAttempts = 1
	// OMDb free tier allows 1000 requests/day; 1 req/sec keeps us well clear.
	DefaultRatePerSecond = 1.0
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OMDb API client. Construct one per process and share it.
type Client struct {
	apiKey        string
	baseURL       string
	httpClient    HTTPDoer
	rateLimiter   *ratelimit.Limiter
	retryAttempts int
	limitReached  atomic.Bool
}

// NewClient creates a new OMDb API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:        apiKey,
		baseURL:       DefaultBaseURL,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		rateLimiter:   ratelimit.New("OMDb", DefaultRatePerSecond),
		retryAttempts: defaultRetryAttempts,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom endpoint, e.g. a local mock server.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRetryAttempts sets the total number of attempts for requests that fail
// with a timeout or connection error.
func WithRetryAttempts(attempts int) Option {
	return func(client *Client) {
		if attempts > 0 {
			client.retryAttempts = attempts
		}
	}
}

// WithRateLimiter sets the limiter used before every request.
// Passing nil disables throttling.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		client.rateLimiter = limiter
	}
}

// WithTimeout sets the request timeout. It only applies to *http.Client
// transports, so order it after WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		hc, ok := client.httpClient.(*http.Client)
		if !ok || d <= 0 {
			return
		}
		copied := *hc
		copied.Timeout = d
		client.httpClient = &copied
	}
}

// RequestsAllowed returns false once OMDb has reported the daily limit
// for this client's API key.
func (c *Client) RequestsAllowed() bool {
	return !c.limitReached.Load()
}

// markRateLimitReached logs a warning on the first call; later calls are no-ops.
func (c *Client) markRateLimitReached() {
	if c.limitReached.CompareAndSwap(false, true) {
		slog.Warn("OMDb API rate limit reached; skipping further OMDb requests for this run")
	}
}

// ResetRateLimit clears the limit flag.
func (c *Client) ResetRateLimit() {
	c.limitReached.Store(false)
}
