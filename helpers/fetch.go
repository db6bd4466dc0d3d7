package helpers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spektr-org/prism/engine"
)

// DefaultFetchTimeout bounds a Fetch call when the caller sets no deadline.
const DefaultFetchTimeout = 30 * time.Second

// maxFetchBytes caps the response body read by Fetch.
const maxFetchBytes = 64 << 20

// Fetcher downloads record stores over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. A nil client gets DefaultFetchTimeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &Fetcher{client: client}
}

// Fetch GETs url and decodes the body as a JSON record array.
// Any status other than 200 is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]engine.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "prism/"+Version)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP error: %d %s", url, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return ParseJSON(body)
}

// Fetch downloads a record store with a default Fetcher.
func Fetch(ctx context.Context, url string) ([]engine.Record, error) {
	return NewFetcher(nil).Fetch(ctx, url)
}

// Version is reported in the User-Agent header. Set by cmd/prism.
var Version = "dev"
