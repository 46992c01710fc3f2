// Package fetch provides the network collaborators the resolver calls
// through narrow interfaces: static and browser-rendered page fetching plus
// URL existence probing.
package fetch

import (
	"context"

	"github.com/sells-group/identity-cli/internal/page"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher retrieves a URL and parses it into a queryable document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*page.Document, error)
	Name() string
}

// Verifier probes whether a URL exists without downloading it.
type Verifier interface {
	Exists(ctx context.Context, url string) bool
}
