// Package resolver orchestrates one identity resolution per input URL:
// fetch, name extraction, validation, profile discovery, and enrichment,
// with graceful degradation at every stage after the initial fetch.
package resolver

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/identity-cli/internal/extract"
	"github.com/sells-group/identity-cli/internal/fetch"
	"github.com/sells-group/identity-cli/internal/model"
	"github.com/sells-group/identity-cli/internal/name"
	"github.com/sells-group/identity-cli/internal/page"
	"github.com/sells-group/identity-cli/internal/profile"
)

// Resolver ties the resolution stages together. It owns the partial result
// exclusively until Resolve returns; collaborators receive inputs by value.
type Resolver struct {
	static    fetch.Fetcher
	rendered  fetch.Fetcher
	locator   *profile.Locator
	selectors page.SelectorMap
}

// New creates a Resolver. The selector map must carry a default entry.
func New(static, rendered fetch.Fetcher, locator *profile.Locator, selectors page.SelectorMap) *Resolver {
	return &Resolver{
		static:    static,
		rendered:  rendered,
		locator:   locator,
		selectors: selectors,
	}
}

// overviewFallbacks are tried in order when the configured overview selector
// misses.
var overviewFallbacks = []string{
	`meta[name="description"]::content`,
	`meta[property="og:description"]::content`,
	`meta[name="twitter:description"]::content`,
	`.company-description`,
	`.about-us`,
	`.overview`,
}

// Resolve runs the full state machine for one URL. Only a failed top-level
// fetch is terminal; every later stage degrades to an unset field, optionally
// with a warning.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) model.ResolutionResult {
	res := model.ResolutionResult{URL: rawURL}
	log := zap.L().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("url", rawURL),
	)

	doc, err := r.fetchHome(ctx, rawURL)
	if err != nil {
		log.Warn("resolve: homepage fetch failed", zap.Error(err))
		res.Error = err.Error()
		return res
	}

	cfg := r.selectors.ForURL(rawURL)

	// Name resolution and validation.
	cand := name.FromDocument(doc)
	expected := name.ExpectedFromURL(rawURL)
	confirmed := cand.Value != "" && name.IsTrustworthy(cand.Value, rawURL)
	log.Debug("resolve: name extracted",
		zap.String("name", cand.Value),
		zap.String("source", string(cand.Source)),
		zap.String("expected", expected),
		zap.Bool("trustworthy", confirmed),
	)

	// locatedFor tracks which name the discovery chain already ran for, so
	// the general locate stage does not repeat an identical attempt.
	locatedFor := ""

	if confirmed || expected == "" {
		res.Name = cand.Value
	} else {
		// Untrustworthy extraction: discover the profile keyed on the
		// URL-derived name, which also outranks the raw extraction.
		if c := r.locator.Locate(ctx, doc, expected, cfg); c != nil {
			res.ProfileURL = c.URL
			log.Debug("resolve: profile found during validation",
				zap.String("profile_url", c.URL),
				zap.String("source", string(c.Source)),
			)
		}
		locatedFor = expected
		res.Name = expected
	}

	// Homepage overview, evaluated once regardless of name validity.
	res.Overview = r.extractOverview(doc, cfg)
	insufficient := extract.IsInsufficient(res.Overview)

	// General profile discovery, only if validation did not already find one.
	if res.ProfileURL == "" {
		key := res.Name
		if key == "" {
			key = expected
		}
		if key != "" && key != locatedFor {
			if c := r.locator.Locate(ctx, doc, key, cfg); c != nil {
				res.ProfileURL = c.URL
				log.Debug("resolve: profile located",
					zap.String("profile_url", c.URL),
					zap.String("source", string(c.Source)),
				)
			}
		}
	}

	// Profile enrichment, only when something is still missing.
	if res.ProfileURL != "" && (insufficient || !confirmed) {
		insufficient = r.enrichFromProfile(ctx, log, &res, confirmed, insufficient)
	}

	if insufficient && res.ProfileURL == "" {
		res.AddWarning("overview below quality bar and no profile source available")
	}

	log.Info("resolve: done",
		zap.String("name", res.Name),
		zap.Bool("profile_found", res.ProfileURL != ""),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res
}

// fetchHome fetches the homepage, static first, browser-rendered as
// fallback. Failure of both is the single terminal error of a resolution.
func (r *Resolver) fetchHome(ctx context.Context, rawURL string) (*page.Document, error) {
	doc, err := r.static.Fetch(ctx, rawURL)
	if err == nil {
		return doc, nil
	}
	zap.L().Debug("resolve: static fetch failed, rendering",
		zap.String("url", rawURL),
		zap.Error(err),
	)
	return r.rendered.Fetch(ctx, rawURL)
}

// extractOverview reads the configured overview selector, then the common
// fallback selectors.
func (r *Resolver) extractOverview(doc *page.Document, cfg page.HostSelectors) string {
	if v := doc.Extract(cfg.Container, cfg.Overview); v != "" {
		return page.CollapseWhitespace(v)
	}
	for _, spec := range overviewFallbacks {
		if v := doc.Extract("", spec); v != "" {
			return page.CollapseWhitespace(v)
		}
	}
	return ""
}

// enrichFromProfile renders the profile page and fills name, overview, and
// descriptive facts. Returns the updated insufficiency state. Fetch or
// extraction failures leave fields unset and never abort the resolution.
func (r *Resolver) enrichFromProfile(ctx context.Context, log *zap.Logger, res *model.ResolutionResult, confirmed, insufficient bool) bool {
	pdoc, err := r.rendered.Fetch(ctx, res.ProfileURL)
	if err != nil {
		log.Debug("resolve: profile page fetch failed", zap.Error(err))
		return insufficient
	}
	markup := pdoc.Markup()

	if !confirmed {
		if pn := profileName(pdoc); pn != "" {
			// Profile-page name outranks both the URL-derived and the raw
			// extracted name.
			res.Name = pn
		}
	}
	if insufficient {
		if about := extract.About(markup); about != "" {
			res.Overview = about
			insufficient = false
		}
	}

	if v := extract.CompanySize(markup); v != "" {
		res.CompanySize = v
	}
	if v := extract.Industry(markup); v != "" {
		res.Industry = v
	} else if v := pdoc.DefinitionValue("Industry"); extract.ValidIndustry(v) {
		res.Industry = v
	}
	if v := extract.FoundedYear(markup); v != "" {
		res.FoundedYear = v
	}

	log.Debug("resolve: profile enrichment complete",
		zap.Bool("industry", res.Industry != ""),
		zap.Bool("company_size", res.CompanySize != ""),
		zap.Bool("founded_year", res.FoundedYear != ""),
	)
	return insufficient
}

// profileName recovers the company name from a profile page title, e.g.
// "Acme Corp | LinkedIn" -> "Acme Corp".
func profileName(doc *page.Document) string {
	for _, frag := range strings.FieldsFunc(doc.Title(), func(r rune) bool {
		return r == '|' || r == '-' || r == ':' || r == '–' || r == '•'
	}) {
		frag = strings.TrimSpace(frag)
		if frag == "" || strings.EqualFold(frag, "linkedin") {
			continue
		}
		if len(frag) > 1 && len(frag) < 100 {
			return frag
		}
	}
	return ""
}
