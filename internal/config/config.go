// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Selectors SelectorsConfig `yaml:"selectors" mapstructure:"selectors"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// FetchConfig configures the page fetchers and the existence probe.
type FetchConfig struct {
	TimeoutSecs       int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RenderTimeoutSecs int `yaml:"render_timeout_secs" mapstructure:"render_timeout_secs"`
	SettleDelaySecs   int `yaml:"settle_delay_secs" mapstructure:"settle_delay_secs"`
	VerifyTimeoutSecs int `yaml:"verify_timeout_secs" mapstructure:"verify_timeout_secs"`
}

// SearchConfig configures the search-provider fallback.
type SearchConfig struct {
	ProviderDelaySecs int    `yaml:"provider_delay_secs" mapstructure:"provider_delay_secs"`
	DuckDuckGoBaseURL string `yaml:"duckduckgo_base_url" mapstructure:"duckduckgo_base_url"`
	BingBaseURL       string `yaml:"bing_base_url" mapstructure:"bing_base_url"`
}

// SelectorsConfig points at the per-host selector file.
type SelectorsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("IDENTITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("fetch.timeout_secs", 15)
	v.SetDefault("fetch.render_timeout_secs", 30)
	v.SetDefault("fetch.settle_delay_secs", 3)
	v.SetDefault("fetch.verify_timeout_secs", 10)
	v.SetDefault("search.provider_delay_secs", 2)
	v.SetDefault("search.duckduckgo_base_url", "https://html.duckduckgo.com")
	v.SetDefault("search.bing_base_url", "https://www.bing.com")
	v.SetDefault("selectors.path", "selectors.yml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger. Logs go to stderr so stdout
// stays reserved for the result payload.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
