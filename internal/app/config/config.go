// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Symbol universe sources.
const (
	SymbolSourceEmbedded = "embedded"
	SymbolSourceDB       = "db"
	SymbolSourceRedis    = "redis"
)

// Config is everything cmd/server needs to start.
type Config struct {
	PredictAPIBaseURL string
	PredictAPITimeout time.Duration
	RatePerSecond     float64
	RateBurst         int
	ExploreDebounce   time.Duration

	ServerAddr string
	LogLevel   string

	SessionSecret string
	SessionTTL    time.Duration

	SymbolSource   string
	DatabaseDriver string
	DatabaseDSN    string
	RedisURL       string
	SymbolRedisKey string
}

// Load reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PREDICT_API_TIMEOUT", 15*time.Second)
	v.SetDefault("PREDICT_API_RATE_PER_SEC", 10)
	v.SetDefault("PREDICT_API_BURST", 5)
	v.SetDefault("EXPLORE_DEBOUNCE", 300*time.Millisecond)
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_TTL", 12*time.Hour)
	v.SetDefault("SYMBOL_SOURCE", SymbolSourceEmbedded)
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("SYMBOL_REDIS_KEY", "symbols:sp500")

	cfg := Config{
		PredictAPIBaseURL: v.GetString("PREDICT_API_BASE_URL"),
		PredictAPITimeout: v.GetDuration("PREDICT_API_TIMEOUT"),
		RatePerSecond:     v.GetFloat64("PREDICT_API_RATE_PER_SEC"),
		RateBurst:         v.GetInt("PREDICT_API_BURST"),
		ExploreDebounce:   v.GetDuration("EXPLORE_DEBOUNCE"),
		ServerAddr:        v.GetString("SERVER_ADDR"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		SessionSecret:     v.GetString("SESSION_SECRET"),
		SessionTTL:        v.GetDuration("SESSION_TTL"),
		SymbolSource:      v.GetString("SYMBOL_SOURCE"),
		DatabaseDriver:    v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RedisURL:          v.GetString("REDIS_URL"),
		SymbolRedisKey:    v.GetString("SYMBOL_REDIS_KEY"),
	}
	return cfg, cfg.Validate()
}

// Validate reports the first missing or inconsistent setting.
func (c Config) Validate() error {
	if c.PredictAPIBaseURL == "" {
		return errors.New("PREDICT_API_BASE_URL is required")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	switch c.SymbolSource {
	case SymbolSourceEmbedded:
	case SymbolSourceDB:
		if c.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required when SYMBOL_SOURCE=db")
		}
	case SymbolSourceRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when SYMBOL_SOURCE=redis")
		}
	default:
		return fmt.Errorf("unknown SYMBOL_SOURCE %q", c.SymbolSource)
	}
	return nil
}
