package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/identity-cli/internal/config"
)

var (
	cfg *config.Config

	// selectorsPath overrides the configured host-selector file when the
	// --selectors flag is given.
	selectorsPath string
)

var rootCmd = &cobra.Command{
	Use:   "identity-cli",
	Short: "Company identity resolution from a website URL",
	Long:  "Resolves a company's canonical name, profile URL, and descriptive metadata from its website, using ordered fallback chains over noisy signals.",
	// The tool is invoked per-URL by upstream automation; usage text on a
	// failed run is noise there.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		if selectorsPath != "" {
			cfg.Selectors.Path = selectorsPath
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&selectorsPath, "selectors", "",
		"path to the host-selector YAML file (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
