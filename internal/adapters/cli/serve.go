package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mirfield/worldatlas/internal/adapters/metrics"
	"github.com/mirfield/worldatlas/internal/adapters/web"
	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the atlas web app",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector()
			adapter := atlas.NewAdapter(buildSource(cfg), atlas.WithMetrics(collector))
			router := web.NewRouter(cfg.PlanetList(), cfg.StyleTable(), adapter,
				web.WithRenderRecorder(collector))

			mux := http.NewServeMux()
			mux.Handle("/metrics", collector.Handler())
			mux.Handle("/", router)

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			log.Printf("worldatlas listening on http://%s", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
}
