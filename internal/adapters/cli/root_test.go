package cli_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirfield/worldatlas/internal/adapters/cli"
)

// writeFixtures lays out a static dataset dir and a config file pointing at it
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	dataset := `{
		"year": 407,
		"countries": [
			{"id": "veltrona", "name": "Veltrona", "indicators": {"gdp": 480, "unemployment": 4.2}},
			{"id": "brund", "name": "Brund", "indicators": {"gdp": 120}}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(dataset), 0o644))

	configYAML := `
upstream:
  static_dir: ` + dir + `
planets:
  - id: test
    label: TEST
    default: true
`
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))
	return configPath
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestPlanetsCommand(t *testing.T) {
	configPath := writeFixtures(t)

	out := runCommand(t, "planets", "--config", configPath)

	assert.Contains(t, out, "test")
	assert.Contains(t, out, "TEST (default)")
}

func TestPlanetsCommand_FallsBackToDefaultsOnBadConfig(t *testing.T) {
	out := runCommand(t, "planets", "--config", "/nonexistent/atlas.yaml")

	assert.Contains(t, out, "TEST (default)")
	assert.Contains(t, out, "sevyr")
}

func TestRankCommand(t *testing.T) {
	configPath := writeFixtures(t)

	out := runCommand(t, "rank", "--config", configPath, "--planet", "test", "--indicator", "gdp")

	assert.Contains(t, out, "Real GDP")
	assert.Contains(t, out, "1. Veltrona")
	assert.Contains(t, out, "$480B")
	assert.Contains(t, out, "2. Brund")
}

func TestRankCommand_AscendingDirection(t *testing.T) {
	configPath := writeFixtures(t)

	out := runCommand(t, "rank", "--config", configPath, "--indicator", "gdp", "--direction", "asc")

	assert.Contains(t, out, "1. Brund")
}

func TestCountryCommand(t *testing.T) {
	configPath := writeFixtures(t)

	out := runCommand(t, "country", "--config", configPath, "--planet", "test", "--country", "veltrona")

	assert.Contains(t, out, "Veltrona (TEST)")
	assert.Contains(t, out, "Real GDP")
	assert.Contains(t, out, "$480B")
	assert.Contains(t, out, "4.2%")
}

func TestRankCommand_PlanetDataURLOverridesSharedSource(t *testing.T) {
	// The shared source is a static dir without this planet; its data_url
	// endpoint is the only place the dataset exists
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"countries": [{"id": "threnn", "name": "Threnn", "indicators": {"gdp": 12}}]}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	configYAML := `
upstream:
  static_dir: ` + dir + `
planets:
  - id: remote
    label: Remote
    data_url: ` + server.URL + `
`
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))

	out := runCommand(t, "rank", "--config", configPath, "--planet", "remote", "--indicator", "gdp")

	assert.Contains(t, out, "1. Threnn")
	assert.Contains(t, out, "$12B")
}

func TestCountryCommand_UnknownCountryFails(t *testing.T) {
	configPath := writeFixtures(t)

	cmd := cli.NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"country", "--config", configPath, "--country", "atlantis"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlantis")
}
