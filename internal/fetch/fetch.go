package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher retrieves the document behind a URL. The extraction core only ever
// sees the resulting markup; transport, pacing and retries all live behind
// this interface.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Options struct {
	UserAgent         string
	AcceptLanguage    string
	Region            string
	Timeout           time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	RequestsPerSecond float64
}

// Client is the HTTP fetch collaborator. Every request carries the region
// cookie and Accept-Language header so the site serves region-priced pages.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	opts    Options
	logger  *slog.Logger
}

func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	return &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		opts:    opts,
		logger:  logger.With("component", "fetcher"),
	}
}

func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.opts.RetryDelay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		body, err := c.doRequest(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		c.logger.Warn("fetch attempt failed", "url", rawURL, "attempt", attempt+1, "error", err)
	}
	return "", fmt.Errorf("fetch failed after %d attempts: %w", c.opts.MaxRetries+1, lastErr)
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}
	if c.opts.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", c.opts.AcceptLanguage)
	}
	if c.opts.Region != "" {
		// Cookie values are restricted to token characters, so the region
		// name travels percent-encoded.
		req.AddCookie(&http.Cookie{Name: "region", Value: url.QueryEscape(c.opts.Region)})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}
