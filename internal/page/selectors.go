package page

import (
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// HostSelectors configures how a specific host's homepage is read.
// Overview uses "selector::attribute" syntax.
type HostSelectors struct {
	Container string `yaml:"container"`
	Overview  string `yaml:"overview"`
	Profile   string `yaml:"profile"`
}

// SelectorMap holds per-host selector configuration keyed by normalized
// hostname. A "default" entry is always present.
type SelectorMap map[string]HostSelectors

// DefaultSelectors returns the built-in selector map used when no external
// configuration exists. The process must be able to run without a file.
func DefaultSelectors() SelectorMap {
	return SelectorMap{
		"default": {
			Container: "body",
			Overview:  `meta[name="description"]::content`,
			Profile:   `a[href*="linkedin.com"]`,
		},
	}
}

// LoadSelectors reads a selector map from a YAML file. A missing file is not
// an error: the built-in defaults are returned instead. A present entry for
// "default" in the file overrides the built-in one.
func LoadSelectors(path string) (SelectorMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.L().Warn("selectors: file not found, using defaults",
				zap.String("path", path),
			)
			return DefaultSelectors(), nil
		}
		return nil, eris.Wrapf(err, "selectors: read %s", path)
	}

	var m SelectorMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrapf(err, "selectors: parse %s", path)
	}
	if m == nil {
		m = SelectorMap{}
	}
	if _, ok := m["default"]; !ok {
		m["default"] = DefaultSelectors()["default"]
	}
	return m, nil
}

// ForURL returns the selector configuration for a URL's host, falling back
// to the default entry.
func (m SelectorMap) ForURL(rawURL string) HostSelectors {
	u, err := url.Parse(rawURL)
	if err == nil {
		host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		if cfg, ok := m[host]; ok {
			return cfg
		}
	}
	return m["default"]
}
