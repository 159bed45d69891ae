package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// Fetcher retrieves raw feed bytes over HTTP
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// FetchError is a fatal feed-level fetch failure: network error, timeout or a
// non-2xx response
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetcher creates a fetcher with the given per-request timeout
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch downloads the feed body, retrying transient failures with backoff
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var body []byte
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return &FetchError{URL: url, Err: err}
		}
		req.Header.Set("User-Agent", f.userAgent)
		addBrowserHeaders(req)

		resp, err := f.client.Do(req)
		if err != nil {
			return &FetchError{URL: url, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode/100 != 2 {
			return &FetchError{URL: url, StatusCode: resp.StatusCode}
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return &FetchError{URL: url, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
