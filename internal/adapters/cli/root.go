// Package cli provides the atlas command tree. Every command builds its
// services from the same configuration as the server, so CLI output always
// matches what the web views would show.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mirfield/worldatlas/internal/adapters/upstream"
	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atlas",
		Short: "World Atlas - browse planet datasets from the terminal or serve them over HTTP",
		Long: `World Atlas loads fictional-world datasets (countries, indicators,
resources, diplomacy) from a live endpoint or bundled JSON files.

Examples:
  atlas serve
  atlas planets
  atlas rank --planet test --indicator gdp
  atlas country --planet test --country veltrona`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/worldatlas)")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewPlanetsCommand())
	rootCmd.AddCommand(NewRankCommand())
	rootCmd.AddCommand(NewCountryCommand())

	return rootCmd
}

// buildSource wires the configured data source: the static directory or the
// live endpoint, plus a per-planet client for every planet that carries its
// own data_url.
func buildSource(cfg *config.Config) atlas.Source {
	newClient := func(baseURL string) atlas.Source {
		return upstream.NewClient(upstream.ClientConfig{
			BaseURL:     baseURL,
			Timeout:     cfg.Upstream.Timeout,
			RateLimit:   cfg.Upstream.RateLimit.Requests,
			Burst:       cfg.Upstream.RateLimit.Burst,
			MaxRetries:  cfg.Upstream.Retry.MaxAttempts,
			BackoffBase: cfg.Upstream.Retry.BackoffBase,
		})
	}

	var source atlas.Source
	if cfg.Upstream.StaticDir != "" {
		source = upstream.NewFileSource(cfg.Upstream.StaticDir)
	} else {
		source = newClient(cfg.Upstream.BaseURL)
	}

	overrides := make(map[string]atlas.Source)
	for _, p := range cfg.PlanetList() {
		if p.DataURL != "" {
			overrides[p.ID] = newClient(p.DataURL)
		}
	}
	if len(overrides) == 0 {
		return source
	}
	return upstream.NewRoutedSource(source, overrides)
}

// buildAdapter wires the configured source into a data adapter
func buildAdapter(cfg *config.Config) *atlas.Adapter {
	return atlas.NewAdapter(buildSource(cfg))
}
