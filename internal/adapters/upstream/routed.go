package upstream

import (
	"context"
	"strings"

	"github.com/mirfield/worldatlas/internal/application/atlas"
)

// RoutedSource dispatches planet fetches to per-planet override sources,
// falling back to a shared default. It backs the per-planet data_url config:
// a planet with its own endpoint gets its own client, everything else shares
// one.
type RoutedSource struct {
	fallback  atlas.Source
	overrides map[string]atlas.Source
}

// NewRoutedSource creates a routed source. Override keys are lowercase
// planet ids.
func NewRoutedSource(fallback atlas.Source, overrides map[string]atlas.Source) *RoutedSource {
	normalized := make(map[string]atlas.Source, len(overrides))
	for id, src := range overrides {
		normalized[strings.ToLower(strings.TrimSpace(id))] = src
	}
	return &RoutedSource{fallback: fallback, overrides: normalized}
}

// FetchPlanet routes to the planet's override source when one is configured
func (s *RoutedSource) FetchPlanet(ctx context.Context, planetID string) ([]byte, error) {
	if src, ok := s.overrides[strings.ToLower(strings.TrimSpace(planetID))]; ok {
		return src.FetchPlanet(ctx, planetID)
	}
	return s.fallback.FetchPlanet(ctx, planetID)
}

// Health probes the shared fallback source; overrides are planet-scoped and
// have no health surface of their own
func (s *RoutedSource) Health(ctx context.Context) (*atlas.HealthInfo, error) {
	return s.fallback.Health(ctx)
}
