package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "https://jservice.io", cfg.ProviderURL)
	require.Equal(t, 15*time.Second, cfg.ProviderTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TRIVIA_ADDR", ":9090")
	t.Setenv("TRIVIA_PROVIDER_URL", "http://localhost:3000")
	t.Setenv("TRIVIA_PROVIDER_TIMEOUT", "2s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "http://localhost:3000", cfg.ProviderURL)
	require.Equal(t, 2*time.Second, cfg.ProviderTimeout)
}

func TestFromEnvBadDuration(t *testing.T) {
	t.Setenv("TRIVIA_PROVIDER_TIMEOUT", "soon")

	_, err := FromEnv()
	require.ErrorContains(t, err, "TRIVIA_PROVIDER_TIMEOUT")
}

func TestValidateReportsEveryFault(t *testing.T) {
	cfg := Config{
		Addr:            "",
		ProviderURL:     "not a url",
		ProviderTimeout: 0,
		ShutdownTimeout: -time.Second,
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 4)
}
