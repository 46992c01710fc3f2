// Package page provides a read-only queryable view over a fetched document.
package page

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Document wraps a parsed HTML page together with the URL it was fetched
// from, so relative hrefs can be resolved against it.
type Document struct {
	base   *url.URL
	gq     *goquery.Document
	markup string
}

// Node is a single matched element.
type Node struct {
	sel *goquery.Selection
}

// Parse builds a Document from raw markup. pageURL must be absolute.
func Parse(pageURL, markup string) (*Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, eris.Wrapf(err, "page: parse url %s", pageURL)
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, eris.Wrap(err, "page: parse markup")
	}
	return &Document{base: base, gq: gq, markup: markup}, nil
}

// URL returns the document's source URL.
func (d *Document) URL() string { return d.base.String() }

// Host returns the document's hostname without a www. prefix.
func (d *Document) Host() string {
	return strings.TrimPrefix(strings.ToLower(d.base.Hostname()), "www.")
}

// Markup returns the raw HTML the document was parsed from.
func (d *Document) Markup() string { return d.markup }

// Title returns the trimmed <title> text.
func (d *Document) Title() string {
	return strings.TrimSpace(d.gq.Find("title").First().Text())
}

// First returns the first element matching the selector.
func (d *Document) First(selector string) (*Node, bool) {
	sel := d.gq.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Node{sel: sel}, true
}

// All returns every element matching the selector, in document order.
func (d *Document) All(selector string) []*Node {
	var nodes []*Node
	d.gq.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Extract reads a value addressed by "selector::attribute" syntax, scoped to
// the container selector when it matches. An omitted attribute reads the
// element text; "content" reads the content attribute (meta tags).
func (d *Document) Extract(container, selSpec string) string {
	if selSpec == "" {
		return ""
	}
	selector, attr := SplitSelectorSpec(selSpec)

	scope := d.gq.Selection
	if container != "" {
		if c := d.gq.Find(container).First(); c.Length() > 0 {
			scope = c
		}
	}
	el := scope.Find(selector).First()
	if el.Length() == 0 {
		return ""
	}
	if attr == "text" {
		return strings.TrimSpace(el.Text())
	}
	v, _ := el.Attr(attr)
	return strings.TrimSpace(v)
}

// DefinitionValue scans definition lists for a <dt> whose text equals label
// (case-insensitive) and returns the text of its paired <dd>.
func (d *Document) DefinitionValue(label string) string {
	var out string
	d.gq.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(dt.Text()), label) {
			return true
		}
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return true
		}
		out = strings.TrimSpace(dd.Text())
		return false
	})
	return out
}

// Resolve converts a possibly relative href to an absolute URL using the
// document's own URL as base. Returns "" for unparseable hrefs.
func (d *Document) Resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return d.base.ResolveReference(ref).String()
}

// Text returns the element's trimmed text content.
func (n *Node) Text() string {
	return strings.TrimSpace(n.sel.Text())
}

// Attr returns the named attribute value.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// SplitSelectorSpec splits "selector::attribute" into its parts. The
// attribute defaults to "text".
func SplitSelectorSpec(spec string) (selector, attr string) {
	if i := strings.Index(spec, "::"); i >= 0 {
		return spec[:i], spec[i+2:]
	}
	return spec, "text"
}

var wsRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace squashes runs of whitespace to single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}
