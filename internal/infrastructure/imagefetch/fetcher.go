// Package imagefetch downloads remotely hosted image bytes.
package imagefetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// downloadTimeout bounds the image-byte download. This is the only timeout in
// the system; generation calls block until they return or fail.
const downloadTimeout = 30 * time.Second

// Fetcher downloads image bytes over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// New creates a new Fetcher with the default download timeout.
func New() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: downloadTimeout},
	}
}

// Fetch downloads the image at the given URL and returns its bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building image request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading image: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image bytes: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("downloading image: empty response body")
	}

	return data, nil
}
