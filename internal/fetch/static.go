package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/identity-cli/internal/page"
)

// StaticFetcher fetches HTML via net/http. Cheap, no browser involved.
type StaticFetcher struct {
	client    *http.Client
	userAgent string
}

// StaticOption configures a StaticFetcher.
type StaticOption func(*StaticFetcher)

// WithHTTPClient overrides the default http.Client (for testing).
func WithHTTPClient(hc *http.Client) StaticOption {
	return func(f *StaticFetcher) {
		f.client = hc
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) StaticOption {
	return func(f *StaticFetcher) {
		f.userAgent = ua
	}
}

// NewStaticFetcher creates a StaticFetcher with the given request timeout.
func NewStaticFetcher(timeout time.Duration, opts ...StaticOption) *StaticFetcher {
	f := &StaticFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *StaticFetcher) Name() string { return "static_http" }

// Fetch retrieves a URL and parses the body.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string) (*page.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "static_http: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "static_http: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return nil, eris.Wrap(err, "static_http: read body")
	}

	if blocked, blockType := detectBlock(resp, body); blocked {
		return nil, eris.Errorf("static_http: blocked (%s)", blockType)
	}
	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("static_http: status %d for %s", resp.StatusCode, targetURL)
	}

	doc, err := page.Parse(targetURL, string(body))
	if err != nil {
		return nil, eris.Wrap(err, "static_http: parse")
	}
	return doc, nil
}
