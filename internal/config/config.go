// Package config loads server and CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset. Never use it outside
// local development.
const DevJWTSecret = "household-dev-secret-change-me"

// Config holds every setting the server reads at startup.
type Config struct {
	Port       int    `env:"PORT"        envDefault:"8080"`
	DBPath     string `env:"DB_PATH"     envDefault:"./data/household.db"`
	StaticPath string `env:"STATIC_PATH" envDefault:"./static"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Members are the default names for household slots nobody has registered into.
	Members []string `env:"HOUSEHOLD_MEMBERS" envDefault:"Lucas,Alex" envSeparator:","`

	UpcomingWindowDays int    `env:"UPCOMING_WINDOW_DAYS" envDefault:"7"`
	Timezone           string `env:"TIMEZONE"             envDefault:"Local"`
	LogLevel           string `env:"LOG_LEVEL"            envDefault:"info"`
}

// Load reads an optional .env file and parses the environment.
// Variables already set in the environment take precedence over the file.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.UpcomingWindowDays < 0 {
		return fmt.Errorf("UPCOMING_WINDOW_DAYS must not be negative, got %d", c.UpcomingWindowDays)
	}
	return nil
}

// Secret returns the JWT signing secret, falling back to DevJWTSecret.
func (c Config) Secret() (secret string, isDefault bool) {
	if c.JWTSecret == "" {
		return DevJWTSecret, true
	}
	return c.JWTSecret, false
}
