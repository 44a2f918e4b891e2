package upstream

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mirfield/worldatlas/internal/application/atlas"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

// FileSource serves planet documents from a directory of static JSON files,
// one <planet>.json per planet. It satisfies the same Source port as the
// live client so the rest of the system cannot tell them apart.
type FileSource struct {
	dir string
}

// NewFileSource creates a static-file source rooted at dir
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// FetchPlanet reads <dir>/<planet>.json. A missing or unreadable file is a
// FetchError, keeping the error taxonomy identical to the live client.
func (s *FileSource) FetchPlanet(_ context.Context, planetID string) ([]byte, error) {
	name := strings.ToLower(strings.TrimSpace(planetID)) + ".json"
	body, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, world.NewFetchError(fmt.Sprintf("static dataset %s: %v", name, err), 0)
	}
	return body, nil
}

// Health synthesizes a health report from the files on disk
func (s *FileSource) Health(_ context.Context) (*atlas.HealthInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, world.NewFetchError(fmt.Sprintf("static dataset dir: %v", err), 0)
	}
	var sheets []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		sheets = append(sheets, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(sheets)
	return &atlas.HealthInfo{
		Project:   "static datasets",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Sheets:    sheets,
	}, nil
}
