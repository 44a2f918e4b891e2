package atlas

import "context"

// Source is the port to an upstream planet data provider: either the live
// HTTP endpoint or a static JSON document tree. FetchPlanet returns the raw
// document body; normalization into the canonical model happens here in the
// application layer so every source is held to the same shape rules.
type Source interface {
	// FetchPlanet retrieves the raw dataset document for a planet.
	// Fails with world.FetchError when the source is unreachable or
	// answers with a non-success status.
	FetchPlanet(ctx context.Context, planetID string) ([]byte, error)

	// Health probes the bare upstream endpoint and reports its top-level
	// health fields.
	Health(ctx context.Context) (*HealthInfo, error)
}

// HealthInfo is the upstream's self-description on a bare request
type HealthInfo struct {
	Project       string   `json:"project"`
	SpreadsheetID string   `json:"spreadsheetId"`
	Timestamp     string   `json:"timestamp"`
	Sheets        []string `json:"sheets"`
}

// MetricsRecorder receives adapter events. The web layer installs a
// prometheus-backed implementation; the zero default is a no-op.
type MetricsRecorder interface {
	RecordCacheHit(planetID string)
	RecordCacheMiss(planetID string)
	RecordLoad(planetID, outcome string, seconds float64)
}

type noopRecorder struct{}

func (noopRecorder) RecordCacheHit(string)              {}
func (noopRecorder) RecordCacheMiss(string)             {}
func (noopRecorder) RecordLoad(string, string, float64) {}
