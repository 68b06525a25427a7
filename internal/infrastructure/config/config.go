package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every configuration variable
const EnvPrefix = "BARANGAY"

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Classifier ClassifierConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `default:"0.0.0.0" validate:"required"`
	// PORT is honoured as a fallback so the service runs unchanged on PaaS hosts
	Port int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	Mode string `default:"debug" validate:"oneof=debug release test"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `default:"info"`
	Format string `default:"json" validate:"oneof=json console"`
}

// ClassifierConfig holds the generative model configuration.
// The provider API key is read by the provider client itself (GEMINI_API_KEY).
type ClassifierConfig struct {
	Model            string        `default:"gemini-3-flash-preview" validate:"required"`
	ThinkingLevel    string        `split_words:"true" default:"low" validate:"oneof=minimal low medium high"`
	ValidateTaxonomy bool          `split_words:"true" default:"true"`
	Timeout          time.Duration `default:"0s" validate:"min=0"`
	BaseURL          string        `split_words:"true" validate:"omitempty,url"`
}

// Load reads configuration from the environment, after loading an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
