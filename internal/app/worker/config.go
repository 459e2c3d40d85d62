package worker

import (
	"errors"
	"os"
	"strings"

	platformtemporal "github.com/Apurer/go-gin-orders-api/internal/platform/temporal"
)

// Config carries environment-driven settings for the worker process.
type Config struct {
	APIURL   string
	APIKey   string
	Temporal platformtemporal.Config
}

// LoadConfig reads the orders API location and the Temporal frontend from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		APIURL:   envDefault("ORDERS_API_URL", "http://127.0.0.1:5000"),
		APIKey:   strings.TrimSpace(os.Getenv("DS3500_KEY")),
		Temporal: platformtemporal.ConfigFromEnv(),
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("DS3500_KEY is required")
	}
	if cfg.Temporal.Disabled {
		return Config{}, platformtemporal.ErrDisabled
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
