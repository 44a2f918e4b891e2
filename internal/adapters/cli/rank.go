package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirfield/worldatlas/internal/adapters/web"
	"github.com/mirfield/worldatlas/internal/domain/world"
	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

// NewRankCommand creates the rank command
func NewRankCommand() *cobra.Command {
	var (
		planetID  string
		indicator string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print a planet's leaderboard for one indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			planet := cfg.PlanetList().Find(planetID)
			if planet == nil {
				planet = cfg.PlanetList().DefaultPlanet()
			}
			if planet == nil {
				return fmt.Errorf("no planets configured")
			}

			adapter := buildAdapter(cfg)
			data, err := adapter.Load(cmd.Context(), planet.ID)
			if err != nil {
				return err
			}

			rows := world.Rank(data.Countries, indicator, direction)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n",
				planet.Label, world.IndicatorLabel(indicator), direction)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "  no data")
				return nil
			}
			for i, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-24s %s\n",
					i+1, row.Name, web.FormatIndicator(indicator, row.Value))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planetID, "planet", "", "Planet id or label (default: configured default planet)")
	cmd.Flags().StringVar(&indicator, "indicator", world.IndicatorGDP,
		"Indicator key: gdp, gdp_per_capita, unemployment, inflation, trade_balance")
	cmd.Flags().StringVar(&direction, "direction", world.Descending, "Sort direction: desc or asc")
	return cmd
}
