// Package profile discovers a company's canonical external profile URL
// through an ordered fallback chain. Stages are ordered by increasing cost:
// reads of markup already in hand, then subpage fetches, then generated-URL
// probes, then search engines. A stage runs only if every earlier stage
// produced nothing.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/identity-cli/internal/fetch"
	"github.com/sells-group/identity-cli/internal/model"
	"github.com/sells-group/identity-cli/internal/page"
)

const (
	platformDomain = "linkedin.com"
	companySegment = "/company/"
	profileBase    = "https://www.linkedin.com/company/"
)

// commonSubpaths are probed in order during the subpage scan.
var commonSubpaths = []string{
	"/about",
	"/about-us",
	"/contact",
	"/contact-us",
	"/company",
	"/team",
	"/careers",
	"/press",
	"/media",
	"/investors",
	"/footer",
}

// Searcher is a swappable search provider returning ranked result URLs.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string) ([]string, error)
}

// Locator runs the profile discovery chain.
type Locator struct {
	fetcher   fetch.Fetcher
	verifier  fetch.Verifier
	searchers []Searcher
	limiter   *rate.Limiter
}

// NewLocator creates a Locator. providerDelay is the politeness gap enforced
// between consecutive search-provider queries.
func NewLocator(fetcher fetch.Fetcher, verifier fetch.Verifier, searchers []Searcher, providerDelay time.Duration) *Locator {
	if providerDelay <= 0 {
		providerDelay = 2 * time.Second
	}
	return &Locator{
		fetcher:   fetcher,
		verifier:  verifier,
		searchers: searchers,
		limiter:   rate.NewLimiter(rate.Every(providerDelay), 1),
	}
}

// Locate returns the first profile candidate the chain produces, or nil.
// Candidates observed in real markup (stages 1-3) are trusted as-is;
// generated and search-derived candidates must pass the existence probe.
func (l *Locator) Locate(ctx context.Context, doc *page.Document, companyName string, cfg page.HostSelectors) *model.ProfileCandidate {
	if c := l.fromSelector(doc, cfg); c != nil {
		return c
	}
	if c := scanLinks(doc, model.SourcePageScan); c != nil {
		return c
	}
	if c := l.scanSubpages(ctx, doc); c != nil {
		return c
	}
	if c := l.fromGenerated(ctx, companyName); c != nil {
		return c
	}
	return l.fromSearch(ctx, companyName)
}

// fromSelector applies the host-configured profile selector inside the
// configured container.
func (l *Locator) fromSelector(doc *page.Document, cfg page.HostSelectors) *model.ProfileCandidate {
	if cfg.Profile == "" {
		return nil
	}
	href := doc.Extract(cfg.Container, cfg.Profile+"::href")
	if href == "" {
		return nil
	}
	abs := doc.Resolve(href)
	if abs == "" {
		return nil
	}
	zap.L().Debug("profile: configured selector hit",
		zap.String("selector", cfg.Profile),
		zap.String("url", abs),
	)
	return &model.ProfileCandidate{URL: abs, Source: model.SourceConfiguredSelector}
}

// scanLinks looks for any anchor pointing at an organization profile page.
func scanLinks(doc *page.Document, source model.CandidateSource) *model.ProfileCandidate {
	for _, n := range doc.All(fmt.Sprintf(`a[href*=%q]`, platformDomain)) {
		href, ok := n.Attr("href")
		if !ok {
			continue
		}
		abs := doc.Resolve(href)
		if IsProfileURL(abs) {
			return &model.ProfileCandidate{URL: abs, Source: source}
		}
	}
	return nil
}

// scanSubpages fetches common subpaths off the document's origin, stopping
// at the first page containing a profile link. Individual fetch failures
// are logged and skipped.
func (l *Locator) scanSubpages(ctx context.Context, doc *page.Document) *model.ProfileCandidate {
	origin := doc.Resolve("/")
	origin = strings.TrimSuffix(origin, "/")
	for _, path := range commonSubpaths {
		sub, err := l.fetcher.Fetch(ctx, origin+path)
		if err != nil {
			zap.L().Debug("profile: subpage fetch failed",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		if c := scanLinks(sub, model.SourceSubpageScan); c != nil {
			return c
		}
	}
	return nil
}

// fromGenerated probes deterministically generated profile URLs.
func (l *Locator) fromGenerated(ctx context.Context, companyName string) *model.ProfileCandidate {
	for _, slug := range SlugCandidates(companyName) {
		candidate := profileBase + slug
		if l.verifier.Exists(ctx, candidate) {
			zap.L().Debug("profile: generated url verified", zap.String("url", candidate))
			return &model.ProfileCandidate{
				URL:      candidate,
				Source:   model.SourceGenerated,
				Verified: true,
			}
		}
	}
	return nil
}

// fromSearch queries providers in order, moving to the next one when a
// provider fails, returns nothing, or yields no verifiable profile link.
// The limiter inserts the politeness delay between provider queries.
func (l *Locator) fromSearch(ctx context.Context, companyName string) *model.ProfileCandidate {
	query := fmt.Sprintf("%s linkedin company", companyName)
	for _, s := range l.searchers {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil
		}
		links, err := s.Search(ctx, query)
		if err != nil {
			zap.L().Debug("profile: search provider failed",
				zap.String("provider", s.Name()),
				zap.Error(err),
			)
			continue
		}
		for _, link := range links {
			if !IsProfileURL(link) {
				continue
			}
			if !l.verifier.Exists(ctx, link) {
				continue
			}
			zap.L().Debug("profile: search result verified",
				zap.String("provider", s.Name()),
				zap.String("url", link),
			)
			return &model.ProfileCandidate{
				URL:      link,
				Source:   model.SourceSearchEngine,
				Verified: true,
			}
		}
	}
	return nil
}

// IsProfileURL reports whether a link is an organization profile page on the
// target platform.
func IsProfileURL(link string) bool {
	lower := strings.ToLower(link)
	return strings.Contains(lower, platformDomain) && strings.Contains(lower, companySegment)
}
