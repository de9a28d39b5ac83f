package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_ALLOW_DEV_SECRET", "false")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigDevSecretGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_ALLOW_DEV_SECRET", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.UsesDevSecret())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("AUTH_ALLOW_DEV_SECRET", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.False(t, cfg.UsesDevSecret())
	require.Equal(t, ":3001", cfg.AppAddr)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, "gpt-4", cfg.ChatModel)
	require.Equal(t, "/uploads/default.jpeg", cfg.PlaceholderImage)
	require.NotEmpty(t, cfg.AllowedOrigins)
}
