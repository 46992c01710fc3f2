package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkup = `<html><head>
	<title>  Acme Corp | Home  </title>
	<meta name="description" content="We make widgets for industrial customers.">
</head><body>
	<div id="main">
		<h1>Acme</h1>
		<a href="/about">About</a>
		<a href="https://www.linkedin.com/company/acme">LinkedIn</a>
	</div>
	<dl>
		<dt>Industry</dt>
		<dd>Industrial Automation</dd>
		<dt>Founded</dt>
		<dd>1987</dd>
	</dl>
</body></html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse("https://acme.com/products/widgets", sampleMarkup)
	require.NoError(t, err)
	return doc
}

func TestDocument_Title(t *testing.T) {
	doc := parseSample(t)
	assert.Equal(t, "Acme Corp | Home", doc.Title())
}

func TestDocument_Host(t *testing.T) {
	doc := parseSample(t)
	assert.Equal(t, "acme.com", doc.Host())
}

func TestDocument_FirstAndAll(t *testing.T) {
	doc := parseSample(t)

	n, ok := doc.First("h1")
	require.True(t, ok)
	assert.Equal(t, "Acme", n.Text())

	_, ok = doc.First(".missing")
	assert.False(t, ok)

	links := doc.All("a")
	assert.Len(t, links, 2)
}

func TestDocument_Extract(t *testing.T) {
	doc := parseSample(t)

	t.Run("attribute syntax", func(t *testing.T) {
		got := doc.Extract("body", `meta[name="description"]::content`)
		assert.Empty(t, got) // meta lives in head, outside the container

		got = doc.Extract("", `meta[name="description"]::content`)
		assert.Equal(t, "We make widgets for industrial customers.", got)
	})

	t.Run("text default", func(t *testing.T) {
		assert.Equal(t, "Acme", doc.Extract("#main", "h1"))
	})

	t.Run("missing container falls back to document", func(t *testing.T) {
		assert.Equal(t, "Acme", doc.Extract(".no-such-container", "h1"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, doc.Extract("", ".missing"))
	})
}

func TestDocument_DefinitionValue(t *testing.T) {
	doc := parseSample(t)
	assert.Equal(t, "Industrial Automation", doc.DefinitionValue("industry"))
	assert.Equal(t, "1987", doc.DefinitionValue("Founded"))
	assert.Empty(t, doc.DefinitionValue("Headquarters"))
}

func TestDocument_Resolve(t *testing.T) {
	doc := parseSample(t)
	assert.Equal(t, "https://acme.com/about", doc.Resolve("/about"))
	assert.Equal(t, "https://acme.com/products/contact", doc.Resolve("contact"))
	assert.Equal(t, "https://other.com/x", doc.Resolve("https://other.com/x"))
	assert.Empty(t, doc.Resolve("  "))
}

func TestSplitSelectorSpec(t *testing.T) {
	sel, attr := SplitSelectorSpec(`meta[name="description"]::content`)
	assert.Equal(t, `meta[name="description"]`, sel)
	assert.Equal(t, "content", attr)

	sel, attr = SplitSelectorSpec(".overview")
	assert.Equal(t, ".overview", sel)
	assert.Equal(t, "text", attr)
}
