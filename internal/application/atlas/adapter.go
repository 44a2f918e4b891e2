package atlas

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/mirfield/worldatlas/internal/domain/shared"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

// Adapter loads and normalizes planet datasets. Each planet is fetched at
// most once per session: results are cached write-once by lowercase planet
// id, and concurrent loads for the same uncached planet coalesce into a
// single upstream call.
type Adapter struct {
	source  Source
	metrics MetricsRecorder
	clock   shared.Clock

	mu    sync.RWMutex
	cache map[string]*world.PlanetData
	group singleflight.Group
}

// AdapterOption configures an Adapter
type AdapterOption func(*Adapter)

// WithMetrics installs a metrics recorder
func WithMetrics(m MetricsRecorder) AdapterOption {
	return func(a *Adapter) { a.metrics = m }
}

// WithClock overrides the clock used for load timing
func WithClock(c shared.Clock) AdapterOption {
	return func(a *Adapter) { a.clock = c }
}

// NewAdapter creates an Adapter over the given source
func NewAdapter(source Source, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		source:  source,
		metrics: noopRecorder{},
		clock:   shared.NewRealClock(),
		cache:   make(map[string]*world.PlanetData),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load returns the canonical dataset for a planet, fetching and normalizing
// it on first use. The returned data is shared and must be treated as
// read-only.
func (a *Adapter) Load(ctx context.Context, planetID string) (*world.PlanetData, error) {
	key := strings.ToLower(strings.TrimSpace(planetID))

	a.mu.RLock()
	data, ok := a.cache[key]
	a.mu.RUnlock()
	if ok {
		a.metrics.RecordCacheHit(key)
		return data, nil
	}
	a.metrics.RecordCacheMiss(key)

	loadID := uuid.NewString()[:8]
	start := a.clock.Now()

	v, err, coalesced := a.group.Do(key, func() (interface{}, error) {
		body, err := a.source.FetchPlanet(ctx, key)
		if err != nil {
			return nil, err
		}
		normalized, err := NormalizePlanet(key, body)
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		// Write-once: a racing load that lost the singleflight round
		// never overwrites an existing entry.
		if existing, ok := a.cache[key]; ok {
			a.mu.Unlock()
			return existing, nil
		}
		a.cache[key] = normalized
		a.mu.Unlock()
		return normalized, nil
	})

	elapsed := a.clock.Now().Sub(start).Seconds()
	if err != nil {
		log.Printf("[load %s] planet %s failed after %.2fs: %v", loadID, key, elapsed, err)
		a.metrics.RecordLoad(key, "error", elapsed)
		return nil, err
	}
	if coalesced {
		log.Printf("[load %s] planet %s joined in-flight load", loadID, key)
	}
	a.metrics.RecordLoad(key, "ok", elapsed)
	return v.(*world.PlanetData), nil
}

// Cached reports whether a planet's dataset is already in the session cache
func (a *Adapter) Cached(planetID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.cache[strings.ToLower(strings.TrimSpace(planetID))]
	return ok
}

// Health probes the upstream source
func (a *Adapter) Health(ctx context.Context) (*HealthInfo, error) {
	return a.source.Health(ctx)
}
