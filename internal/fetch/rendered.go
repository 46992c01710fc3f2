package fetch

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rotisserie/eris"

	"github.com/sells-group/identity-cli/internal/page"
)

// RenderedFetcher fetches pages through a headless browser so that
// script-built markup is visible. A fresh browser is launched per fetch:
// a resolution performs at most two rendered fetches, so keeping a warm
// browser is not worth the lifecycle handling.
type RenderedFetcher struct {
	timeout      time.Duration
	settle       time.Duration
	waitSelector string
	userAgent    string
}

// RenderedOption configures a RenderedFetcher.
type RenderedOption func(*RenderedFetcher)

// WithWaitSelector blocks the fetch until the selector is present, up to the
// fetch timeout.
func WithWaitSelector(sel string) RenderedOption {
	return func(f *RenderedFetcher) {
		f.waitSelector = sel
	}
}

// WithSettleDelay sets the fixed delay after load before markup is read.
func WithSettleDelay(d time.Duration) RenderedOption {
	return func(f *RenderedFetcher) {
		f.settle = d
	}
}

// NewRenderedFetcher creates a RenderedFetcher with the given page timeout.
func NewRenderedFetcher(timeout time.Duration, opts ...RenderedOption) *RenderedFetcher {
	f := &RenderedFetcher{
		timeout:   timeout,
		settle:    3 * time.Second,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *RenderedFetcher) Name() string { return "rendered_browser" }

// Fetch renders a URL in a headless browser and parses the final markup.
func (f *RenderedFetcher) Fetch(ctx context.Context, targetURL string) (*page.Document, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")
	controlURL, err := l.Launch()
	if err != nil {
		return nil, eris.Wrap(err, "rendered: launch browser")
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, eris.Wrap(err, "rendered: connect browser")
	}
	defer func() { _ = browser.Close() }()

	pg, err := browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, eris.Wrap(err, "rendered: open page")
	}
	pg = pg.Timeout(f.timeout)

	if err := pg.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return nil, eris.Wrap(err, "rendered: set user agent")
	}
	if err := pg.Navigate(targetURL); err != nil {
		return nil, eris.Wrapf(err, "rendered: navigate %s", targetURL)
	}
	if err := pg.WaitLoad(); err != nil {
		return nil, eris.Wrap(err, "rendered: wait load")
	}

	// Fixed settle delay for late script mutations.
	select {
	case <-ctx.Done():
		return nil, eris.Wrap(ctx.Err(), "rendered: settle")
	case <-time.After(f.settle):
	}

	if f.waitSelector != "" {
		if _, err := pg.Element(f.waitSelector); err != nil {
			return nil, eris.Wrapf(err, "rendered: wait for %q", f.waitSelector)
		}
	}

	markup, err := pg.HTML()
	if err != nil {
		return nil, eris.Wrap(err, "rendered: read markup")
	}

	doc, err := page.Parse(targetURL, markup)
	if err != nil {
		return nil, eris.Wrap(err, "rendered: parse")
	}
	return doc, nil
}
