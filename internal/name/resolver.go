// Package name derives and validates company names from documents and URLs.
package name

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/identity-cli/internal/model"
	"github.com/sells-group/identity-cli/internal/page"
)

// nameSelectors are tried in order before falling back to title
// decomposition. Meta selectors use the selector::attribute syntax.
var nameSelectors = []struct {
	spec   string
	source model.CandidateSource
}{
	{`meta[property="og:site_name"]::content`, model.SourceMeta},
	{`meta[name="application-name"]::content`, model.SourceMeta},
	{`.company-name`, model.SourceHeading},
	{`.site-title`, model.SourceHeading},
	{`.logo-text`, model.SourceHeading},
	{`h1`, model.SourceHeading},
}

var titleSplitRe = regexp.MustCompile(`[|\-:@–•]`)

// titleStoplist holds generic title fragments that never name a company.
var titleStoplist = map[string]bool{
	"home":      true,
	"welcome":   true,
	"dashboard": true,
	"page":      true,
	"news":      true,
	"blog":      true,
	"shop":      true,
	"store":     true,
}

// FromDocument resolves a candidate company name from a page. Selector
// sources win over title decomposition; the first hit in (1,100) characters
// is taken.
func FromDocument(doc *page.Document) model.NameCandidate {
	for _, s := range nameSelectors {
		selector, attr := page.SplitSelectorSpec(s.spec)
		node, ok := doc.First(selector)
		if !ok {
			continue
		}
		var v string
		if attr == "text" {
			v = node.Text()
		} else {
			v, _ = node.Attr(attr)
		}
		v = page.CollapseWhitespace(v)
		if len(v) > 1 && len(v) < 100 {
			return model.NameCandidate{Value: v, Source: s.source}
		}
	}
	return model.NameCandidate{
		Value:  fromTitle(doc.Title(), doc.Host()),
		Source: model.SourceTitleFallback,
	}
}

// fromTitle decomposes a page title into fragments and picks the one most
// likely to be the company name. Preference order: a fragment whose words
// all occur in the domain's first label, then the longest non-generic
// fragment, then the first fragment.
func fromTitle(title, host string) string {
	var parts []string
	for _, p := range titleSplitRe.Split(title, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	domain := firstLabel(host)
	for _, p := range parts {
		words := strings.Fields(strings.ToLower(p))
		if len(words) == 0 {
			continue
		}
		all := true
		for _, w := range words {
			if !strings.Contains(domain, w) {
				all = false
				break
			}
		}
		if all {
			return p
		}
	}

	var best string
	for _, p := range parts {
		if titleStoplist[strings.ToLower(p)] {
			continue
		}
		if len(p) > len(best) {
			best = p
		}
	}
	if best != "" {
		return best
	}
	return parts[0]
}

var (
	namePrefixes = []string{"get", "my", "the", "app", "web", "site", "go", "try"}
	nameSuffixes = []string{"app", "web", "site", "io", "ai", "tech", "co", "inc"}
	titleCaser   = cases.Title(language.English)
)

// ExpectedFromURL derives the company name a domain implies: take the
// hostname's first label, drop one leading marketing prefix and one trailing
// platform suffix among its hyphen/underscore segments, and title-case the
// rest. Stripping is per-segment, never substring: a single-token label like
// "getacme" is left whole rather than reduced to "acme". That keeps the rule
// from eating into a real name and makes it idempotent.
func ExpectedFromURL(rawURL string) string {
	label := firstLabel(hostOf(rawURL))
	if label == "" {
		return ""
	}

	segs := strings.FieldsFunc(label, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(segs) == 0 {
		return ""
	}
	if len(segs) > 1 && inList(namePrefixes, segs[0]) {
		segs = segs[1:]
	}
	if len(segs) > 1 && inList(nameSuffixes, segs[len(segs)-1]) {
		segs = segs[:len(segs)-1]
	}

	for i, s := range segs {
		segs[i] = titleCaser.String(s)
	}
	return strings.Join(segs, " ")
}

func inList(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// hostOf extracts a hostname from a URL, tolerating bare host strings.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	// Bare hostname or name without scheme.
	return strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
}

// firstLabel returns the lowercased first DNS label, www. stripped.
func firstLabel(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if i := strings.IndexByte(host, '.'); i >= 0 {
		host = host[:i]
	}
	return host
}
