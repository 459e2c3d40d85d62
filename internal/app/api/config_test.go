package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "POSTGRES_DSN", "ORDERS_SAMPLE_SIZE", "ORDERS_PAGE_SIZE", "ORDERS_SEED"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 20, cfg.SampleSize)
	require.Equal(t, 50, cfg.PageSize)
	require.False(t, cfg.Seeded)
	require.Empty(t, cfg.PostgresDSN)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("ORDERS_SAMPLE_SIZE", "0")
	t.Setenv("ORDERS_PAGE_SIZE", "5")
	t.Setenv("ORDERS_SEED", "42")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.Addr())
	require.Equal(t, 0, cfg.SampleSize)
	require.Equal(t, 5, cfg.PageSize)
	require.True(t, cfg.Seeded)
	require.Equal(t, int64(42), cfg.Seed)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"ORDERS_SAMPLE_SIZE": "-1",
		"ORDERS_PAGE_SIZE":   "0",
		"ORDERS_SEED":        "abc",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
