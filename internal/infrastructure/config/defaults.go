package config

import "time"

// SetDefaults fills in default values for any missing configuration fields
func SetDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	if cfg.Upstream.BaseURL == "" && cfg.Upstream.StaticDir == "" {
		cfg.Upstream.StaticDir = "./data"
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 15 * time.Second
	}
	if cfg.Upstream.RateLimit.Requests == 0 {
		cfg.Upstream.RateLimit.Requests = 2
	}
	if cfg.Upstream.RateLimit.Burst == 0 {
		cfg.Upstream.RateLimit.Burst = 2
	}
	if cfg.Upstream.Retry.MaxAttempts == 0 {
		cfg.Upstream.Retry.MaxAttempts = 3
	}
	if cfg.Upstream.Retry.BackoffBase == 0 {
		cfg.Upstream.Retry.BackoffBase = time.Second
	}

	if len(cfg.Planets) == 0 {
		cfg.Planets = []PlanetConfig{
			{ID: "test", Label: "TEST", Default: true},
			{ID: "parallax", Label: "Parallax"},
			{ID: "cyqs", Label: "Cyq`s"},
			{ID: "sevyr", Label: "Sevyr"},
			{ID: "octavium", Label: "Octavium"},
		}
	}

	if len(cfg.Relationships) == 0 {
		cfg.Relationships = []RelationshipStyleConfig{
			{Category: "ally", Label: "Ally", Color: "#16a34a"},
			{Category: "friendly", Label: "Friendly", Color: "#22c55e"},
			{Category: "neutral", Label: "Neutral", Color: "#6b7280"},
			{Category: "tense", Label: "Tense", Color: "#f59e0b"},
			{Category: "hostile", Label: "Hostile", Color: "#ef4444"},
		}
	}
}
