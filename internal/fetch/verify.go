package fetch

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// URLVerifier checks URL existence with a HEAD probe, following redirects.
// Some hosts reject HEAD outright; those get a single GET retry.
type URLVerifier struct {
	client    *http.Client
	userAgent string
}

// NewURLVerifier creates a URLVerifier with the given probe timeout.
func NewURLVerifier(timeout time.Duration) *URLVerifier {
	return &URLVerifier{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// Exists reports whether the URL responds with a non-error status.
func (v *URLVerifier) Exists(ctx context.Context, targetURL string) bool {
	status, ok := v.probe(ctx, http.MethodHead, targetURL)
	if ok && status == http.StatusMethodNotAllowed {
		status, ok = v.probe(ctx, http.MethodGet, targetURL)
	}
	if !ok {
		return false
	}
	return status < 400
}

func (v *URLVerifier) probe(ctx context.Context, method, targetURL string) (int, bool) {
	req, err := http.NewRequestWithContext(ctx, method, targetURL, nil)
	if err != nil {
		return 0, false
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		zap.L().Debug("verify: probe failed",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return 0, false
	}
	_ = resp.Body.Close()
	return resp.StatusCode, true
}
