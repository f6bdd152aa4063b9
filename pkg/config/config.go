package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	env.Must(cfg, Load(cfg))
}

// Load loads the configuration from environment variables and an optional .env file.
func Load[T any](cfg T, filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return env.Parse(cfg)
}

// Config holds the configuration for the application
type Config struct {
	Log    LogConfig    `envPrefix:"LOG_"`
	Seed   SeedConfig   `envPrefix:"SEED_"`
	Engine EngineConfig `envPrefix:"ENGINE_"`
	View   ViewConfig   `envPrefix:"VIEW_"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level       string   `env:"LEVEL" envDefault:"info"`
	OutputPaths []string `env:"OUTPUT_PATHS" envDefault:"stderr"`
	TimeKey     string   `env:"TIME_KEY" envDefault:"ts"`
	LevelKey    string   `env:"LEVEL_KEY" envDefault:"level"`
}

// SeedConfig describes the randomly generated starting book.
type SeedConfig struct {
	Levels      int             `env:"LEVELS" envDefault:"10"`
	BestBid     decimal.Decimal `env:"BEST_BID" envDefault:"100"`
	BestAsk     decimal.Decimal `env:"BEST_ASK" envDefault:"105"`
	Tick        decimal.Decimal `env:"TICK" envDefault:"1"`
	BidSizeMean float64         `env:"BID_SIZE_MEAN" envDefault:"100"`
	BidSizeSD   float64         `env:"BID_SIZE_SD" envDefault:"25"`
	AskSizeMean float64         `env:"ASK_SIZE_MEAN" envDefault:"100"`
	AskSizeSD   float64         `env:"ASK_SIZE_SD" envDefault:"20"`
	// RandomSeed of 0 seeds from the clock.
	RandomSeed uint64 `env:"RANDOM_SEED" envDefault:"0"`
}

// EngineConfig holds the order processing loop settings.
type EngineConfig struct {
	QueueSize   int           `env:"QUEUE_SIZE" envDefault:"64"`
	ReadBackoff time.Duration `env:"READ_BACKOFF" envDefault:"100ms"`
}

// ViewConfig holds the rendering settings.
type ViewConfig struct {
	VAMPDepth int             `env:"VAMP_DEPTH" envDefault:"4"`
	PriceBand decimal.Decimal `env:"PRICE_BAND" envDefault:"0.10"`
}
