package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	moverrors "github.com/lepinkainen/moviefav/internal/errors"
)

const (
	limitReachedMessage = "Request limit reached!"
	maxBodyBytes        = 1 << 20
)

// endpoint builds <base>/?<params>&apikey=<key>.
func (c *Client) endpoint(params url.Values) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", moverrors.NewRequestError(fmt.Sprintf("invalid base URL %q: %v", c.baseURL, err))
	}
	if base.Scheme == "" || base.Host == "" {
		return "", moverrors.NewRequestError(fmt.Sprintf("invalid base URL %q", c.baseURL))
	}
	if base.Path == "" {
		base.Path = "/"
	}
	params.Set("apikey", c.apiKey)
	base.RawQuery = params.Encode()
	return base.String(), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		if err := c.doJSONRequest(ctx, endpoint, target); err != nil {
			lastErr = err
			if !isRetryable(err) || attempt == c.retryAttempts {
				return err
			}
			delay := backoffDelay(attempt)
			slog.Debug("Retrying OMDb request", "attempt", attempt, "delay", delay, "error", err)
			if err := sleep(ctx, delay); err != nil {
				return err
			}
			continue
		}
		return nil
	}
	return lastErr
}

func (c *Client) doJSONRequest(ctx context.Context, endpoint string, target any) error {
	if !c.RequestsAllowed() {
		return moverrors.NewRateLimitError("OMDb API request limit reached")
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return moverrors.NewRequestError(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return moverrors.NewTransportError(0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return moverrors.NewTransportError(resp.StatusCode, err)
	}

	if c.limitExceeded(body) {
		return moverrors.NewRateLimitErrorWithRetry("OMDb API request limit reached", retryAfter(resp.Header))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		slog.Warn("OMDb API error", "status", resp.StatusCode, "body", snippet)
		return moverrors.NewTransportError(resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet))
	}

	if err := json.NewDecoder(bytes.NewReader(body)).Decode(target); err != nil {
		return moverrors.NewDecodeError(err)
	}
	return nil
}

// limitExceeded reports whether body is OMDb's daily-limit envelope and
// marks the client as exhausted if so. OMDb sends it with a 401 status.
func (c *Client) limitExceeded(body []byte) bool {
	var envelope struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false
	}
	if envelope.Error != limitReachedMessage {
		return false
	}
	c.markRateLimitReached()
	return true
}

func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func isRetryable(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		// Network errors (connection resets etc.)
		if strings.Contains(urlErr.Error(), "connection") {
			return true
		}
	}
	return false
}

func backoffDelay(attempt int) time.Duration {
	// exponential backoff capped at 10 seconds
	delay := time.Duration(1<<uint(attempt-1)) * time.Second
	if delay > 10*time.Second {
		return 10 * time.Second
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
