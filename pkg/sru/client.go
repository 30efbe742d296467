// Package sru fetches raw catalog records from the library's SRU
// (search/retrieve) backend.
package sru

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sethgrid/pester"
)

// Fetcher retrieves the raw OPAC XML for one bib record. The record service
// depends on this interface so tests can swap in a canned backend.
type Fetcher interface {
	FetchRecord(ctx context.Context, bib string, testing bool) (string, error)
}

// Client queries the SRU API over HTTP GET. Retries and backoff live here, in
// the collaborator; the record pipeline itself never retries.
type Client struct {
	base        string
	testingBase string
	http        *pester.Client
}

// NewClient builds a client for the given production and testing endpoints.
func NewClient(base, testingBase string) *Client {
	c := pester.New()
	c.Concurrency = 1
	c.MaxRetries = 3
	c.Backoff = pester.ExponentialBackoff
	c.Timeout = 30 * time.Second
	return &Client{
		base:        base,
		testingBase: testingBase,
		http:        c,
	}
}

// NewClientFromEnv reads SRU_URL and SRU_TESTING_URL. SRU_TESTING_URL falls
// back to the production endpoint when unset.
func NewClientFromEnv() (*Client, error) {
	base, ok := os.LookupEnv("SRU_URL")
	if !ok || base == "" {
		return nil, fmt.Errorf("SRU_URL is not set")
	}
	testingBase := os.Getenv("SRU_TESTING_URL")
	if testingBase == "" {
		testingBase = base
	}
	return NewClient(base, testingBase), nil
}

// queryParams assembles the fixed searchRetrieve parameter set for a bib id.
func queryParams(bib string) url.Values {
	return url.Values{
		"operation":    {"searchRetrieve"},
		"version":      {"1.2"},
		"query":        {"id=" + bib},
		"recordSchema": {"opac"},
	}
}

// RequestURL returns the full GET URL for a bib id against the selected
// endpoint.
func (c *Client) RequestURL(bib string, testing bool) string {
	base := c.base
	if testing {
		base = c.testingBase
	}
	return base + "?" + queryParams(bib).Encode()
}

// FetchRecord performs the searchRetrieve GET and returns the response body
// as a string. Any network failure or non-2xx status is a fetch error; the
// caller treats it as terminal for the request.
func (c *Client) FetchRecord(ctx context.Context, bib string, testing bool) (string, error) {
	u := c.RequestURL(bib, testing)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build SRU request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch record from SRU: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code from SRU: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read SRU response: %w", err)
	}
	return string(body), nil
}
