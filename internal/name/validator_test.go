package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTrustworthy(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		url       string
		want      bool
	}{
		{"name contains domain", "Acme Corp", "https://acme.com", true},
		{"domain contains name", "Acme", "https://acmeworldwide.com", true},
		{"unrelated title", "Unrelated Page Title", "https://acme.com", false},
		{"hyphen segment match", "Blue Ridge Consulting", "https://blue-ridge.com", true},
		{"multi word literal match", "Northwind Traders Inc", "https://northwind.com", true},
		{"empty name", "", "https://acme.com", false},
		{"marketing copy", "Best Widgets On Earth", "https://zz-industrial.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrustworthy(tt.extracted, tt.url))
		})
	}
}

func TestOverlapSimilarity(t *testing.T) {
	// Order-insensitive and double-counts repeats; the boundary is what
	// downstream behavior depends on, not the metric's elegance.
	assert.InDelta(t, 1.0, overlapSimilarity("acme", "acme"), 0.001)
	assert.InDelta(t, 0.2, overlapSimilarity("ab", "acism"), 0.001)
	assert.Equal(t, 0.0, overlapSimilarity("", "acme"))
}
