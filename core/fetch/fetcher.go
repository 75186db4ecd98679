// Package fetch implements the Fetcher interface.
// It is the host-side boundary: everything below cmd/server receives
// already-materialized HTML and never touches the network.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zakkhoyt/linkmark/core"
)

const defaultTimeout = 30 * time.Second

// The marketplace serves a bot-detection interstitial to bare Go clients;
// a browser-like header set keeps the real listing markup coming back.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// HTTPFetcher fetches listing pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
