package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// API configuration
	API struct {
		// Base URL of the external SafeSpace API
		BaseURL string `env:"SAFESPACE_API_URL" envDefault:"http://localhost:5000"`

		// Timeout for a single API request
		Timeout time.Duration `env:"SAFESPACE_API_TIMEOUT" envDefault:"10s"`
	}

	// Stand-in for real authentication: the user whose compare list we manage
	UserID int `env:"SAFESPACE_USER_ID" envDefault:"1"`

	// Risk classification thresholds on the 0-10 safety scale
	Risk struct {
		// Minimum safety score classified as low risk
		LowThreshold float64 `env:"RISK_LOW_THRESHOLD" envDefault:"8.5"`

		// Minimum safety score that avoids high risk
		HighThreshold float64 `env:"RISK_HIGH_THRESHOLD" envDefault:"7"`
	}

	// Watch mode configuration
	Watch struct {
		// Interval between refetch cycles
		PollInterval time.Duration `env:"WATCH_POLL_INTERVAL" envDefault:"30s"`
	}

	// Neighborhood association radius in decimal degrees (roughly 2 km)
	NeighborhoodMaxDistance float64 `env:"NEIGHBORHOOD_MAX_DISTANCE" envDefault:"0.02"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
