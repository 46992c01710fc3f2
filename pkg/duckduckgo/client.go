// Package duckduckgo provides a client for the DuckDuckGo HTML search
// endpoint. No API key is required.
package duckduckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://html.duckduckgo.com"

// Client performs DuckDuckGo search operations.
type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Result is a single search result link.
type Result struct {
	Title string
	URL   string
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default endpoint (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient creates a DuckDuckGo search client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:   defaultBaseURL,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// retryableStatusCode returns true if the HTTP status should trigger a retry.
func retryableStatusCode(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable
}

func (c *httpClient) Search(ctx context.Context, query string) ([]Result, error) {
	reqURL := c.baseURL + "/html/?q=" + url.QueryEscape(query)

	const maxAttempts = 3
	backoff := 1 * time.Second

	var resp *http.Response
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, eris.Wrap(err, "duckduckgo: create request")
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err = c.http.Do(req)
		if err == nil && !retryableStatusCode(resp.StatusCode) {
			break
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		if attempt == maxAttempts {
			if err != nil {
				return nil, eris.Wrap(err, "duckduckgo: request failed")
			}
			return nil, eris.Errorf("duckduckgo: status %d after %d attempts", resp.StatusCode, attempt)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("duckduckgo: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: parse response")
	}

	var results []Result
	doc.Find("a.result__a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		results = append(results, Result{
			Title: strings.TrimSpace(s.Text()),
			URL:   unwrapRedirect(href),
		})
	})
	return results, nil
}

// unwrapRedirect decodes DuckDuckGo's /l/?uddg= redirect wrapper, one layer.
// Non-wrapped links pass through unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
