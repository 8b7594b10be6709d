package config

import (
	"errors"
	"os"

	do "github.com/samber/do/v2"
)

var Package = do.Package(
	do.Lazy[*Config](NewConfig),
)

// Config holds the application configuration.
type Config struct {
	BaseURL         string
	Address         string
	PostURLTemplate string
}

// NewConfig creates a new configuration from environment variables (for DI).
func NewConfig(_ do.Injector) (*Config, error) {
	return New()
}

// New creates a new configuration from environment variables.
func New() (*Config, error) {
	baseURL := os.Getenv("FEEDPULSE_BASE_URL")
	if baseURL == "" {
		return nil, errors.New("FEEDPULSE_BASE_URL environment variable is required")
	}

	address := os.Getenv("FEEDPULSE_ADDRESS")
	if address == "" {
		address = ":8080"
	}

	return &Config{
		BaseURL:         baseURL,
		Address:         address,
		PostURLTemplate: os.Getenv("FEEDPULSE_POST_URL_TEMPLATE"),
	}, nil
}
