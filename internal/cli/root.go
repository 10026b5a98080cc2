// Package cli implements auractl, a support tool that talks to the panel's
// application API directly: look an account up by email, list its servers.
// Useful when debugging "my server is missing" tickets without opening the
// panel admin area.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/auranode/auranode/internal/panel"
)

var (
	cfg    *Config
	client *panel.Client
)

// Config holds CLI configuration.
type Config struct {
	PanelURL string
	APIKey   string
	Output   string
}

// DefaultConfig returns a Config seeded from the environment.
func DefaultConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		PanelURL: os.Getenv("PANEL_URL"),
		APIKey:   os.Getenv("PANEL_API_KEY"),
		Output:   "text",
	}
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "auractl",
		Short: "Support CLI for the AuraNode panel integration",
		Long: `auractl queries the hosting panel's application API with the same
credentials the website uses. It covers the account lookups support
needs most: find a user by email and list a user's servers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PanelURL == "" {
				return fmt.Errorf("panel URL is required (--panel-url or PANEL_URL)")
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("API key is required (--api-key or PANEL_API_KEY)")
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))
			client = panel.New(cfg.PanelURL, cfg.APIKey, logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.PanelURL, "panel-url", cfg.PanelURL, "Panel base URL (env: PANEL_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Application API key (env: PANEL_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newUserCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
