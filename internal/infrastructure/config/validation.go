package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateConfig checks struct tags plus the cross-field rules the tags
// cannot express
func ValidateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	if cfg.Upstream.BaseURL == "" && cfg.Upstream.StaticDir == "" {
		return fmt.Errorf("upstream: one of base_url or static_dir must be set")
	}

	seen := make(map[string]bool, len(cfg.Planets))
	for _, p := range cfg.Planets {
		id := strings.ToLower(strings.TrimSpace(p.ID))
		if seen[id] {
			return fmt.Errorf("planets: duplicate id %q", id)
		}
		seen[id] = true
	}
	return nil
}
