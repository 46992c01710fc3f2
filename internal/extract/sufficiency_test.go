package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInsufficient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \n\t ", true},
		{"too short", "Acme Incorporated", true},
		{"boilerplate and short", "Welcome to our site", true},
		{"boilerplate in longer text", "This is the official website of Acme Incorporated of Delaware", true},
		{"too few words", "Supercalifragilisticexpialidocious consulting", true},
		{"real description", "We build distributed storage systems for financial institutions worldwide.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInsufficient(tt.in))
		})
	}
}
