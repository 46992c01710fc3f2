package profile

import (
	"regexp"
	"strings"
)

// corporateSuffixes are dropped as whole tokens before slugging.
var corporateSuffixes = map[string]bool{
	"inc":         true,
	"corp":        true,
	"corporation": true,
	"company":     true,
	"co":          true,
	"ltd":         true,
	"limited":     true,
	"llc":         true,
	"group":       true,
	"holdings":    true,
	"the":         true,
	"and":         true,
	"&":           true,
}

// brandSlugs maps well-known brands whose profile slug does not follow the
// generated pattern.
var brandSlugs = map[string]string{
	"ge":       "general-electric",
	"hp":       "hp",
	"ibm":      "ibm",
	"intel":    "intel-corporation",
	"jpmorgan": "jpmorganchase",
	"meta":     "meta",
	"pg":       "procter-and-gamble",
	"vw":       "volkswagen",
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9&]+`)

// Slug collapses a company name to a hyphenated profile slug, dropping
// corporate-suffix tokens.
func Slug(name string) string {
	toks := strings.Fields(slugCleanRe.ReplaceAllString(strings.ToLower(name), " "))
	var keep []string
	for _, t := range toks {
		if corporateSuffixes[t] {
			continue
		}
		keep = append(keep, t)
	}
	if len(keep) == 0 {
		// All tokens were suffix words; slug the raw tokens instead.
		keep = toks
	}
	return strings.Join(keep, "-")
}

// SlugCandidates returns profile slugs to probe for a company name, most
// likely first. Known brands map straight to their canonical slug.
func SlugCandidates(name string) []string {
	base := Slug(name)
	if base == "" {
		return nil
	}
	if s, ok := brandSlugs[base]; ok {
		return []string{s}
	}
	return []string{base, base + "-inc", base + "-corp", base + "-company"}
}
