package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirfield/worldatlas/internal/adapters/web"
	"github.com/mirfield/worldatlas/internal/domain/world"
	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

// NewCountryCommand creates the country command
func NewCountryCommand() *cobra.Command {
	var (
		planetID  string
		countryID string
	)

	cmd := &cobra.Command{
		Use:   "country",
		Short: "Print one country's profile",
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

			country := data.FindCountry(countryID)
			if country == nil {
				return world.NewNotFoundError("country", countryID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", country.Name, planet.Label)
			if country.Demonym != "" {
				fmt.Fprintf(out, "Demonym: %s\n", country.Demonym)
			}
			if country.Motto != "" {
				fmt.Fprintf(out, "Motto:   %q\n", country.Motto)
			}

			fmt.Fprintln(out, "\nIndicators:")
			for _, key := range world.IndicatorKeys() {
				fmt.Fprintf(out, "  %-22s %s\n",
					world.IndicatorLabel(key), web.IndicatorCell(country.Indicators, key))
			}

			if len(country.Resources) > 0 {
				fmt.Fprintln(out, "\nResources:")
				for _, r := range country.Resources {
					qty := web.Dash
					if r.Quantity > 0 {
						qty = web.FormatQuantity(r.Quantity)
					}
					fmt.Fprintf(out, "  %-20s %-10s %6s  %s\n",
						r.Name, r.Category, web.ShareCell(r.Share), qty)
				}
			}

			if len(country.Diplomacy) > 0 {
				styles := cfg.StyleTable()
				fmt.Fprintln(out, "\nDiplomacy:")
				for _, partner := range data.Countries {
					rel, ok := country.Diplomacy[strings.ToLower(partner.ID)]
					if !ok {
						continue
					}
					fmt.Fprintf(out, "  %-20s %s\n", partner.Name, styles.Style(rel.Category).Label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planetID, "planet", "", "Planet id or label")
	cmd.Flags().StringVar(&countryID, "country", "", "Country id")
	_ = cmd.MarkFlagRequired("country")
	return cmd
}
