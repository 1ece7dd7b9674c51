package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one source fetch end to end, including body read.
const DefaultTimeout = 20 * time.Second

// Client retrieves source image bytes over HTTP.
//
// The pipeline never retries fetches; a timeout or non-2xx status is an
// input-acquisition error surfaced to the caller as is.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with the default 20-second timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch retrieves the full body at url.
//
// Returns an error on request failure, timeout, or any non-2xx status.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return data, nil
}
