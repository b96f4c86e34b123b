package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "JobMonitor/1.0 (+local)"

// Client is the one HTTP door every source goes through: fixed timeout,
// shared per-host rate limiter, no retries. Callers treat any error as
// "no data this run" and move on.
type Client struct {
	hc      *http.Client
	limiter *HostLimiter
}

func NewClient(timeout time.Duration, limiter *HostLimiter) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html, */*")

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, url); err != nil {
			return nil, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("get %s: status %d", url, res.StatusCode)
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return b, nil
}

func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	b, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
