package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serpMarkup = `<html><body>
	<div class="result">
		<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fcompany%2Facme&rut=abc">Acme Corp | LinkedIn</a>
	</div>
	<div class="result">
		<a class="result__a" href="https://acme.com/">Acme - Official Site</a>
	</div>
	<div class="result">
		<a class="other">not a result link</a>
	</div>
</body></html>`

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(serpMarkup))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "Acme linkedin company")

	require.NoError(t, err)
	assert.Equal(t, "Acme linkedin company", gotQuery)
	require.Len(t, results, 2)

	// Redirect wrapper is unwrapped one layer.
	assert.Equal(t, "https://www.linkedin.com/company/acme", results[0].URL)
	assert.Equal(t, "Acme Corp | LinkedIn", results[0].Title)
	assert.Equal(t, "https://acme.com/", results[1].URL)
}

func TestSearch_RetriesTransientStatus(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(serpMarkup))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "acme")

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, results, 2)
}

func TestSearch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "acme")
	assert.Error(t, err)
}

func TestUnwrapRedirect(t *testing.T) {
	wrapped := "//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://example.com/page?x=1")
	assert.Equal(t, "https://example.com/page?x=1", unwrapRedirect(wrapped))
	assert.Equal(t, "https://plain.com", unwrapRedirect("https://plain.com"))
}
