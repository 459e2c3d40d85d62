package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string
	PostgresDSN string
	SampleSize  int
	PageSize    int
	Seed        int64
	Seeded      bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SampleSize:  20,
		PageSize:    50,
	}
	var err error
	if cfg.SampleSize, err = envInt("ORDERS_SAMPLE_SIZE", cfg.SampleSize, 0); err != nil {
		return Config{}, err
	}
	if cfg.PageSize, err = envInt("ORDERS_PAGE_SIZE", cfg.PageSize, 1); err != nil {
		return Config{}, err
	}
	if raw := strings.TrimSpace(os.Getenv("ORDERS_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ORDERS_SEED must be an integer")
		}
		cfg.Seed, cfg.Seeded = seed, true
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envInt(key string, fallback, minimum int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < minimum {
		return 0, fmt.Errorf("%s must be an integer >= %d", key, minimum)
	}
	return value, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
