package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig        `envPrefix:"APP_"`
	Timescale timescale.Config `envPrefix:"TIMESCALE_"`
	Redis     redis.Config     `envPrefix:"REDIS_"`
	Publisher PublisherConfig  `envPrefix:"PUBLISHER_"`
	Generator GeneratorConfig  `envPrefix:"GENERATOR_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"fx-ohlc-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// PublisherConfig controls the periodic aggregate broadcaster.
type PublisherConfig struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
	Symbols  []string      `env:"SYMBOLS" envDefault:"EUR/USD"`
}

// GeneratorConfig controls the synthetic tick generator.
type GeneratorConfig struct {
	Symbol     string        `env:"SYMBOL" envDefault:"EUR/USD"`
	Interval   time.Duration `env:"INTERVAL" envDefault:"1s"`
	StartPrice float64       `env:"START_PRICE" envDefault:"1.0"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
