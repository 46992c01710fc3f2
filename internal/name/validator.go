package name

import (
	"regexp"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)

// similarityThreshold is the character-overlap acceptance bound. The overlap
// measure is crude — order-insensitive and it double-counts repeated
// characters — but its decision boundary is load-bearing for downstream
// accept/reject behavior, so it is preserved as-is rather than replaced with
// a proper string distance.
const similarityThreshold = 0.6

// IsTrustworthy reports whether an extracted name plausibly belongs to the
// URL's domain. Purely lexical: no phonetic or semantic matching.
func IsTrustworthy(extracted, rawURL string) bool {
	domain := firstLabel(hostOf(rawURL))
	normName := nonWordRe.ReplaceAllString(strings.ToLower(extracted), "")
	normDomain := nonWordRe.ReplaceAllString(domain, "")
	if normName == "" || normDomain == "" {
		return false
	}

	// Direct containment either way.
	if strings.Contains(normName, normDomain) || strings.Contains(normDomain, normName) {
		return true
	}

	// Hyphenated domains: any segment overlapping any name word.
	if strings.Contains(domain, "-") {
		words := strings.Fields(strings.ToLower(extracted))
		for _, seg := range strings.Split(domain, "-") {
			if seg == "" {
				continue
			}
			for _, w := range words {
				if strings.Contains(w, seg) || strings.Contains(seg, w) {
					return true
				}
			}
		}
	}

	// Multi-word names: any substantial word appearing in the domain.
	words := strings.Fields(strings.ToLower(extracted))
	if len(words) > 1 {
		for _, w := range words {
			if len(w) > 2 && strings.Contains(domain, w) {
				return true
			}
		}
	}

	return overlapSimilarity(normName, normDomain) >= similarityThreshold
}

// overlapSimilarity counts name characters present anywhere in the domain,
// scaled by the longer of the two strings.
func overlapSimilarity(name, domain string) float64 {
	if len(name) == 0 || len(domain) == 0 {
		return 0
	}
	matched := 0
	for _, c := range name {
		if strings.ContainsRune(domain, c) {
			matched++
		}
	}
	denom := len(name)
	if len(domain) > denom {
		denom = len(domain)
	}
	return float64(matched) / float64(denom)
}
