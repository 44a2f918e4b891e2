package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

// NewPlanetsCommand creates the planets command
func NewPlanetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "planets",
		Short: "List the known planets",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Listing planets should never fail on config problems; an
			// unreadable config falls back to the built-in vocabulary
			cfg := config.MustLoadConfig(configPath)
			for _, p := range cfg.PlanetList() {
				marker := ""
				if p.Default {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s%s\n", p.ID, p.Label, marker)
			}
			return nil
		},
	}
}
