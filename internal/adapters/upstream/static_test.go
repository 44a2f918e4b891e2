package upstream_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirfield/worldatlas/internal/adapters/upstream"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

func writeDataset(t *testing.T, dir, planet, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, planet+".json"), []byte(body), 0o644))
}

func TestFileSource_FetchPlanet(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "test", `{"countries": []}`)
	source := upstream.NewFileSource(dir)

	body, err := source.FetchPlanet(context.Background(), "TEST")

	require.NoError(t, err)
	assert.JSONEq(t, `{"countries": []}`, string(body))
}

func TestFileSource_MissingFileIsFetchError(t *testing.T) {
	source := upstream.NewFileSource(t.TempDir())

	_, err := source.FetchPlanet(context.Background(), "atlantis")

	require.Error(t, err)
	var fetchErr *world.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFileSource_HealthListsDatasets(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "sevyr", `{}`)
	writeDataset(t, dir, "test", `{}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	source := upstream.NewFileSource(dir)

	info, err := source.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"sevyr", "test"}, info.Sheets, "sorted, json files only")
}
