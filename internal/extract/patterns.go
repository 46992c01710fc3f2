// Package extract pulls scalar company facts out of raw or rendered markup
// with priority-ordered pattern lists. Each extractor commits to the first
// structurally valid match, trading recall for precision: a later, better
// match never overrides an earlier acceptable one.
package extract

import (
	"regexp"
	"strings"
)

// rule pairs a pattern with the capture group holding the value.
type rule struct {
	re    *regexp.Regexp
	group int
}

// apply runs rules in priority order and returns the first validated match.
func apply(rules []rule, text string, valid func(string) bool) string {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil || len(m) <= r.group {
			continue
		}
		v := strings.TrimSpace(m[r.group])
		if valid == nil || valid(v) {
			return v
		}
	}
	return ""
}

var sizeRules = []rule{
	{re: regexp.MustCompile(`(?i)([\d,]+[-–][\d,]+|\d[\d,]*\+?)\s*employees?`), group: 1},
	{re: regexp.MustCompile(`(?i)Company size[:\s]*([\d,]+[-–][\d,]+|\d[\d,]*\+?)`), group: 1},
	{re: regexp.MustCompile(`(?i)([\d,]+[-–][\d,]+|\d[\d,]*\+?)\s*people`), group: 1},
	{re: regexp.MustCompile(`(?i)(\d+,\d+|\d+\+?)\s*employees?`), group: 1},
	{re: regexp.MustCompile(`(?i)employees?[:\s]*([\d,]+[-–][\d,]+|\d[\d,]*\+?)`), group: 1},
}

var sizeCleanRe = regexp.MustCompile(`[^\d,\-–+]`)

// CompanySize extracts an employee count or range, e.g. "1,001-5,000".
func CompanySize(text string) string {
	v := apply(sizeRules, text, nil)
	if v == "" {
		return ""
	}
	return sizeCleanRe.ReplaceAllString(v, "")
}

var industryRules = []rule{
	{re: regexp.MustCompile(`(?is)Industry\s*</dt>\s*<dd[^>]*>\s*([^<]+?)\s*</dd>`), group: 1},
	{re: regexp.MustCompile(`(?is)<dt[^>]*>\s*Industry\s*</dt>\s*<dd[^>]*>\s*([^<]+?)\s*</dd>`), group: 1},
	{re: regexp.MustCompile(`(?i)"industry"\s*:\s*"([^"]+)"`), group: 1},
	{re: regexp.MustCompile(`(?i)Industry\s*\n\s*([A-Za-z][A-Za-z\s&,]+?)\s*\n`), group: 1},
	{re: regexp.MustCompile(`(?i)Industry[^>]*>\s*([A-Za-z][A-Za-z\s&,]+?)\s*<`), group: 1},
	{re: regexp.MustCompile(`(?i)Industry[:\s]+([A-Za-z][A-Za-z\s&,]+?)\s*(?:Company size|Headquarters|Founded|$)`), group: 1},
}

var (
	entityRe = regexp.MustCompile(`&[^;\s]*;`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	markupRe = regexp.MustCompile(`[<>"']`)
)

// ValidIndustry reports whether a candidate industry string is usable:
// sensible length, contains a letter, carries no markup remnants.
func ValidIndustry(v string) bool {
	return len(v) > 2 && len(v) < 100 && letterRe.MatchString(v) && !markupRe.MatchString(v)
}

// Industry extracts an industry label from markup or rendered text. The
// returned value is the cleaned form: entities removed, whitespace collapsed.
func Industry(text string) string {
	for _, r := range industryRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil || len(m) <= r.group {
			continue
		}
		v := cleanInline(strings.TrimSpace(m[r.group]))
		if ValidIndustry(v) {
			return v
		}
	}
	return ""
}

// cleanInline drops HTML entities and collapses whitespace.
func cleanInline(v string) string {
	v = entityRe.ReplaceAllString(v, "")
	return collapseWS(v)
}

var foundedRules = []rule{
	{re: regexp.MustCompile(`(?i)Founded[:\s]*(\d{4})`), group: 1},
	{re: regexp.MustCompile(`(?is)<dt[^>]*>\s*Founded\s*</dt>\s*<dd[^>]*>([^<]+)`), group: 1},
}

// FoundedYear extracts a founding year like "1987".
func FoundedYear(text string) string {
	return apply(foundedRules, text, nil)
}

var aboutRules = []rule{
	{re: regexp.MustCompile(`(?is)<section[^>]*data-section=["']about["'][^>]*>(.*?)</section>`), group: 1},
	{re: regexp.MustCompile(`(?is)class="[^"]*org-about-us-organization-description[^"]*"[^>]*>(.*?)</(?:div|section|p)>`), group: 1},
	{re: regexp.MustCompile(`(?is)<[^>]*class="[^"]*break-words[^"]*"[^>]*>(.*?)</`), group: 1},
	{re: regexp.MustCompile(`(?i)"description"\s*:\s*"([^"]{30,})"`), group: 1},
}

// About extracts a usable about-text block, stripped of markup. Candidates
// pass the sufficiency gate and a (30,1000) length bound after stripping.
func About(text string) string {
	for _, r := range aboutRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil || len(m) <= r.group {
			continue
		}
		c := StripMarkup(m[r.group])
		if len(c) > 30 && len(c) < 1000 && !IsInsufficient(c) {
			return c
		}
	}
	return ""
}

var (
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	wsRe    = regexp.MustCompile(`\s+`)
	entOnly = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// StripMarkup removes embedded tags, decodes common entities, and collapses
// whitespace.
func StripMarkup(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = entOnly.Replace(s)
	return collapseWS(s)
}

func collapseWS(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}
