package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// devSessionSecret is only used when SESSION_SECRET is unset.
const devSessionSecret = "goby-forms-development-secret"

// Provider exposes read-only configuration to the rest of the application.
type Provider interface {
	GetAddr() string
	GetAppName() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetStaticDir() string
	GetPostRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string `validate:"required"`
	AppName       string `validate:"required"`
	SessionSecret string `validate:"min=16"`
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	StaticDir     string
	PostRateLimit int `validate:"gte=0"`
}

// New loads configuration from a .env file (if present) and environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	rateLimit, err := intEnv("POST_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:          stringEnv("APP_ADDR", ":8080"),
		AppName:       stringEnv("APP_NAME", "Goby Forms"),
		SessionSecret: stringEnv("SESSION_SECRET", devSessionSecret),
		LogFormat:     stringEnv("LOG_FORMAT", "text"),
		LogLevel:      stringEnv("LOG_LEVEL", "debug"),
		StaticDir:     os.Getenv("APP_STATIC_DIR"),
		PostRateLimit: rateLimit,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppName() string       { return c.AppName }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) GetStaticDir() string     { return c.StaticDir }
func (c *Config) GetPostRateLimit() int    { return c.PostRateLimit }
