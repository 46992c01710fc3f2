package extract

import "strings"

// boilerplatePhrases mark an overview as generic filler rather than a real
// company description.
var boilerplatePhrases = []string{
	"welcome to",
	"coming soon",
	"under construction",
	"page not found",
	"home page",
	"official website",
	"main page",
	"default page",
}

// IsInsufficient classifies an extracted overview as too sparse or generic
// to keep. It gates both the homepage overview and any profile-derived
// replacement.
func IsInsufficient(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return true
	}
	if len(t) < 20 {
		return true
	}
	lower := strings.ToLower(t)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return len(strings.Fields(t)) < 5
}
