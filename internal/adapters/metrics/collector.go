// Package metrics exposes prometheus collectors for the atlas: page
// renders, upstream loads and cache behavior.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "worldatlas"
	subsystem = "server"
)

// Collector implements the application's MetricsRecorder and the web
// layer's RenderRecorder over a private prometheus registry
type Collector struct {
	registry *prometheus.Registry

	pageRenders  *prometheus.CounterVec
	cacheEvents  *prometheus.CounterVec
	loadOutcomes *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
}

// NewCollector creates and registers all atlas collectors
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "page_renders_total",
			Help:      "Page renders by route kind",
		}, []string{"kind"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "planet_cache_events_total",
			Help:      "Planet cache hits and misses",
		}, []string{"planet", "event"}),
		loadOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "planet_loads_total",
			Help:      "Planet dataset loads by outcome",
		}, []string{"planet", "outcome"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "planet_load_seconds",
			Help:      "Planet dataset load duration",
			Buckets:   prometheus.DefBuckets,
		}, []string{"planet"}),
	}
	c.registry.MustRegister(c.pageRenders, c.cacheEvents, c.loadOutcomes, c.loadDuration)
	return c
}

// Handler serves the /metrics endpoint for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordPageRender counts one rendered page
func (c *Collector) RecordPageRender(kind string) {
	c.pageRenders.WithLabelValues(kind).Inc()
}

// RecordCacheHit counts a planet served from the session cache
func (c *Collector) RecordCacheHit(planetID string) {
	c.cacheEvents.WithLabelValues(planetID, "hit").Inc()
}

// RecordCacheMiss counts a planet that required a load
func (c *Collector) RecordCacheMiss(planetID string) {
	c.cacheEvents.WithLabelValues(planetID, "miss").Inc()
}

// RecordLoad counts a completed load and observes its duration
func (c *Collector) RecordLoad(planetID, outcome string, seconds float64) {
	c.loadOutcomes.WithLabelValues(planetID, outcome).Inc()
	c.loadDuration.WithLabelValues(planetID).Observe(seconds)
}
