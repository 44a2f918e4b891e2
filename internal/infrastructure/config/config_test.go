package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirfield/worldatlas/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Upstream.StaticDir)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 3, cfg.Upstream.Retry.MaxAttempts)
	assert.NotEmpty(t, cfg.Planets)
	assert.Len(t, cfg.Relationships, 5)
}

func TestSetDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = 9090
	cfg.Upstream.BaseURL = "https://example.org/exec"

	config.SetDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Empty(t, cfg.Upstream.StaticDir, "a configured live endpoint suppresses the static default")
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_RequiresASource(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Upstream.StaticDir = ""

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url or static_dir")
}

func TestValidateConfig_RejectsDuplicatePlanetIDs(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Planets = []config.PlanetConfig{
		{ID: "test", Label: "TEST"},
		{ID: "TEST", Label: "Test Again"},
	}

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestValidateConfig_RejectsBadColor(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Relationships = []config.RelationshipStyleConfig{
		{Category: "ally", Label: "Ally", Color: "greenish"},
	}

	assert.Error(t, config.ValidateConfig(cfg))
}

func TestPlanetList_CanonicalizesIDs(t *testing.T) {
	cfg := &config.Config{Planets: []config.PlanetConfig{
		{ID: " Sevyr ", Label: "Sevyr", Default: true},
	}}

	planets := cfg.PlanetList()

	require.Len(t, planets, 1)
	assert.Equal(t, "sevyr", planets[0].ID)
	assert.Equal(t, "Sevyr", planets[0].Label)
	assert.True(t, planets[0].Default)
}

func TestStyleTable_PreservesLegendOrder(t *testing.T) {
	cfg := &config.Config{Relationships: []config.RelationshipStyleConfig{
		{Category: "Hostile", Label: "Hostile", Color: "#ef4444"},
		{Category: "Ally", Label: "Ally", Color: "#16a34a"},
	}}

	styles := cfg.StyleTable()

	assert.Equal(t, []string{"hostile", "ally"}, styles.Categories())
	assert.Equal(t, "#16a34a", styles.Style("ALLY").Color)
}

func TestMustLoadConfig_FallsBackToDefaults(t *testing.T) {
	cfg := config.MustLoadConfig("/nonexistent/atlas.yaml")

	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
