package tasks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError describes a feed that could not be retrieved this cycle
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Fetcher struct {
	httpClient   *http.Client
	userAgent    string
	timeout      time.Duration
	maxBodyBytes int64
}

func NewFetcher(httpClient *http.Client, userAgent string, timeout time.Duration, maxBodyBytes int64) *Fetcher {
	return &Fetcher{
		httpClient:   httpClient,
		userAgent:    userAgent,
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", feedURL, nil)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: feedURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("HTTP error: %s", resp.Status)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, &FetchError{URL: feedURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(data)) > f.maxBodyBytes {
		return nil, &FetchError{URL: feedURL, Err: fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes)}
	}
	if len(data) == 0 {
		return nil, &FetchError{URL: feedURL, Err: fmt.Errorf("empty response body")}
	}

	return data, nil
}
