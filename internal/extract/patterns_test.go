package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanySize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"labeled range", "Company size: 1,001-5,000 employees", "1,001-5,000"},
		{"plain range", "We have 51-200 employees worldwide", "51-200"},
		{"plus form", "10,000+ employees", "10,000+"},
		{"people form", "200-500 people", "200-500"},
		{"no match", "a growing team", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanySize(tt.in))
		})
	}
}

func TestIndustry(t *testing.T) {
	t.Run("dt dd markup", func(t *testing.T) {
		in := `<dl><dt>Industry</dt><dd class="x">Financial Services</dd></dl>`
		assert.Equal(t, "Financial Services", Industry(in))
	})

	t.Run("json key", func(t *testing.T) {
		in := `{"industry":"Software Development","size":"200"}`
		assert.Equal(t, "Software Development", Industry(in))
	})

	t.Run("strips entities from accepted value", func(t *testing.T) {
		in := `<dl><dt>Industry</dt><dd>Financial&nbsp;Services</dd></dl>`
		assert.Equal(t, "FinancialServices", Industry(in))
	})

	t.Run("collapses whitespace in accepted value", func(t *testing.T) {
		in := "<dl><dt>Industry</dt><dd>Financial\n      Services</dd></dl>"
		assert.Equal(t, "Financial Services", Industry(in))
	})

	t.Run("rejects markup remnants", func(t *testing.T) {
		in := `"industry":"<div>5</div>"`
		assert.Empty(t, Industry(in))
	})

	t.Run("rejects overlong candidate", func(t *testing.T) {
		long := make([]byte, 150)
		for i := range long {
			long[i] = 'a'
		}
		in := `{"industry":"` + string(long) + `"}`
		assert.Empty(t, Industry(in))
	})
}

func TestFoundedYear(t *testing.T) {
	assert.Equal(t, "1987", FoundedYear("Founded: 1987 in Boston"))
	assert.Equal(t, "2015", FoundedYear("<dt>Founded</dt><dd>2015</dd>"))
	assert.Empty(t, FoundedYear("a long time ago"))
}

func TestAbout(t *testing.T) {
	t.Run("section block", func(t *testing.T) {
		in := `<section data-section="about"><p>We build distributed storage systems
			for financial institutions in forty countries worldwide.</p></section>`
		got := About(in)
		assert.Contains(t, got, "distributed storage systems")
		assert.NotContains(t, got, "<p>")
	})

	t.Run("too short rejected", func(t *testing.T) {
		in := `<section data-section="about">Tiny text here now ok</section>`
		assert.Empty(t, About(in))
	})

	t.Run("boilerplate rejected", func(t *testing.T) {
		in := `<section data-section="about">Welcome to our site, the official website of a company somewhere.</section>`
		assert.Empty(t, About(in))
	})

	t.Run("json description", func(t *testing.T) {
		in := `{"description":"A consultancy helping mid-market manufacturers modernize their supply chains."}`
		got := About(in)
		assert.Contains(t, got, "mid-market manufacturers")
	})
}

func TestStripMarkup(t *testing.T) {
	in := "<p>Hello &amp;   world</p>\n<b>again</b>"
	assert.Equal(t, "Hello & world again", StripMarkup(in))
}
