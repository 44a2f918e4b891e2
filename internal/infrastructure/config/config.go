// Package config loads server configuration from, in priority order,
// environment variables (ATLAS_ prefix), an optional config file and
// built-in defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mirfield/worldatlas/internal/domain/world"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Server        ServerConfig              `mapstructure:"server"`
	Upstream      UpstreamConfig            `mapstructure:"upstream"`
	Planets       []PlanetConfig            `mapstructure:"planets"`
	Relationships []RelationshipStyleConfig `mapstructure:"relationships"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// UpstreamConfig holds the data source settings. Exactly one of BaseURL
// (live endpoint) or StaticDir (bundled JSON documents) is used; when both
// are set the static directory wins, which keeps local development offline.
type UpstreamConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"omitempty,url"`
	StaticDir string `mapstructure:"static_dir"`

	Timeout   time.Duration   `mapstructure:"timeout" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Retry     RetryConfig     `mapstructure:"retry"`
}

// RateLimitConfig holds token-bucket settings for the live client
type RateLimitConfig struct {
	Requests float64 `mapstructure:"requests" validate:"min=0"`
	Burst    int     `mapstructure:"burst" validate:"min=0"`
}

// RetryConfig holds retry settings for failed upstream requests
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=0"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}

// PlanetConfig is one known planet
type PlanetConfig struct {
	ID      string `mapstructure:"id" validate:"required"`
	Label   string `mapstructure:"label" validate:"required"`
	DataURL string `mapstructure:"data_url"`
	Default bool   `mapstructure:"default"`
}

// RelationshipStyleConfig is one relationship category's display style.
// The category vocabulary is open: the entries here define the legend, and
// unlisted categories fall back to neutral styling at render time.
type RelationshipStyleConfig struct {
	Category string `mapstructure:"category" validate:"required"`
	Label    string `mapstructure:"label" validate:"required"`
	Color    string `mapstructure:"color" validate:"required,hexcolor"`
}

// LoadConfig loads configuration with env > file > defaults priority
func LoadConfig(configPath string) (*Config, error) {
	// Load .env if present; missing is fine
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/worldatlas")
	}

	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// MustLoadConfig loads configuration or falls back to pure defaults
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		defaultCfg := &Config{}
		SetDefaults(defaultCfg)
		return defaultCfg
	}
	return cfg
}

// PlanetList converts configured planets to the domain list, canonicalizing
// identifiers to lowercase
func (c *Config) PlanetList() world.PlanetList {
	planets := make(world.PlanetList, 0, len(c.Planets))
	for _, p := range c.Planets {
		planets = append(planets, world.Planet{
			ID:      strings.ToLower(strings.TrimSpace(p.ID)),
			Label:   p.Label,
			DataURL: p.DataURL,
			Default: p.Default,
		})
	}
	return planets
}

// StyleTable converts the configured relationship vocabulary to the domain
// style table, preserving legend order
func (c *Config) StyleTable() world.StyleTable {
	categories := make([]string, 0, len(c.Relationships))
	styles := make(map[string]world.RelationshipStyle, len(c.Relationships))
	for _, r := range c.Relationships {
		key := strings.ToLower(r.Category)
		categories = append(categories, key)
		styles[key] = world.RelationshipStyle{Label: r.Label, Color: r.Color}
	}
	return world.NewStyleTable(categories, styles)
}
