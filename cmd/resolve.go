package main

import (
	"encoding/json"
	"net/url"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/identity-cli/internal/fetch"
	"github.com/sells-group/identity-cli/internal/page"
	"github.com/sells-group/identity-cli/internal/profile"
	"github.com/sells-group/identity-cli/internal/resolver"
	"github.com/sells-group/identity-cli/pkg/bing"
	"github.com/sells-group/identity-cli/pkg/duckduckgo"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a company's identity from its website URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		target, err := url.Parse(args[0])
		if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
			return eris.Errorf("invalid url: %s", args[0])
		}

		selectors, err := page.LoadSelectors(cfg.Selectors.Path)
		if err != nil {
			return eris.Wrap(err, "load selectors")
		}

		static := fetch.NewStaticFetcher(time.Duration(cfg.Fetch.TimeoutSecs) * time.Second)
		rendered := fetch.NewRenderedFetcher(
			time.Duration(cfg.Fetch.RenderTimeoutSecs)*time.Second,
			fetch.WithSettleDelay(time.Duration(cfg.Fetch.SettleDelaySecs)*time.Second),
		)
		verifier := fetch.NewURLVerifier(time.Duration(cfg.Fetch.VerifyTimeoutSecs) * time.Second)

		searchers := []profile.Searcher{
			profile.DuckDuckGoSearcher{Client: duckduckgo.NewClient(
				duckduckgo.WithBaseURL(cfg.Search.DuckDuckGoBaseURL),
			)},
			profile.BingSearcher{Client: bing.NewClient(
				bing.WithBaseURL(cfg.Search.BingBaseURL),
			)},
		}
		locator := profile.NewLocator(static, verifier, searchers,
			time.Duration(cfg.Search.ProviderDelaySecs)*time.Second)

		r := resolver.New(static, rendered, locator, selectors)
		result := r.Resolve(ctx, target.String())

		// The result JSON is the process's sole stdout payload. A degraded
		// result still exits zero.
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
