package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	BaseURL          string        `env:"BASE_URL" envDefault:"https://www.autoscout24.it"`
	RequestDelay     time.Duration `env:"REQUEST_DELAY" envDefault:"1s"`
	MaxPages         int           `env:"MAX_PAGES" envDefault:"50"`
	ScrapingEnabled  bool          `env:"SCRAPING_ENABLED" envDefault:"true"`
	ScrapingInterval time.Duration `env:"SCRAPING_INTERVAL" envDefault:"24h"`
	SearchCooldown   time.Duration `env:"SEARCH_COOLDOWN" envDefault:"5s"`

	RabbitMQ RabbitMQ
	Redis    Redis
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"car-tracker-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"car-tracker.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"car-tracker.run"`
}

// Redis holds Redis configuration. Listing events are not published when Addr is empty.
type Redis struct {
	Addr   string `env:"REDIS_ADDR"`
	DB     int    `env:"REDIS_DB" envDefault:"0"`
	Stream string `env:"REDIS_STREAM" envDefault:"car-tracker:events"`
}

// Load loads variables from .env files, when they exist, and parses configuration from environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("can't load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't parse env variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level returns parsed log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("MAX_PAGES must be positive, got %d", c.MaxPages)
	}
	if c.ScrapingInterval <= 0 {
		return fmt.Errorf("SCRAPING_INTERVAL must be positive, got %s", c.ScrapingInterval)
	}
	return nil
}
