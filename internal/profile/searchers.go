package profile

import (
	"context"

	"github.com/sells-group/identity-cli/pkg/bing"
	"github.com/sells-group/identity-cli/pkg/duckduckgo"
)

// DuckDuckGoSearcher adapts the DuckDuckGo client to the Searcher interface.
type DuckDuckGoSearcher struct {
	Client duckduckgo.Client
}

func (s DuckDuckGoSearcher) Name() string { return "duckduckgo" }

func (s DuckDuckGoSearcher) Search(ctx context.Context, query string) ([]string, error) {
	results, err := s.Client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}

// BingSearcher adapts the Bing client to the Searcher interface.
type BingSearcher struct {
	Client bing.Client
}

func (s BingSearcher) Name() string { return "bing" }

func (s BingSearcher) Search(ctx context.Context, query string) ([]string, error) {
	results, err := s.Client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}
