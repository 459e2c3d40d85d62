package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	platformtemporal "github.com/Apurer/go-gin-orders-api/internal/platform/temporal"
)

// Config carries environment-driven settings for the client process.
type Config struct {
	APIURL   string
	APIKey   string
	Page     int
	Temporal platformtemporal.Config
}

// LoadConfig loads ENV_FILE (default .env) when present, then reads the environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := envDefault("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg := Config{
		APIURL:   envDefault("ORDERS_API_URL", "http://127.0.0.1:5000"),
		APIKey:   strings.TrimSpace(os.Getenv("DS3500_KEY")),
		Temporal: platformtemporal.ConfigFromEnv(),
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("DS3500_KEY is required")
	}
	if raw := strings.TrimSpace(os.Getenv("ORDERS_PAGE")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return Config{}, fmt.Errorf("ORDERS_PAGE must be a non-negative integer")
		}
		cfg.Page = page
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
