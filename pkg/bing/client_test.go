package bing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serpMarkup = `<html><body><ol id="b_results">
	<li class="b_algo"><h2><a href="https://www.linkedin.com/company/acme">Acme Corp | LinkedIn</a></h2></li>
	<li class="b_algo"><h2><a href="https://acme.com/">Acme</a></h2></li>
	<li class="b_ad"><h2><a href="https://ads.example.com">Sponsored</a></h2></li>
</ol></body></html>`

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
	assert.Equal(t, "https://www.linkedin.com/company/acme", results[0].URL)
	assert.Equal(t, "Acme Corp | LinkedIn", results[0].Title)
}

func TestSearch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "acme")
	assert.Error(t, err)
}
