package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`
	SiteVariant  string `env:"SITE_VARIANT" envDefault:"management"`
	DefaultTheme string `env:"DEFAULT_THEME" envDefault:"dark"`
	CORSOrigin   string `env:"CORS_ORIGIN" envDefault:"*"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}
