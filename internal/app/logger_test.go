package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerFormatSelection(t *testing.T) {
	jsonLogger := NewLogger(&Config{LogFormat: "json"})
	require.IsType(t, &slog.JSONHandler{}, jsonLogger.Handler())

	textLogger := NewLogger(&Config{LogFormat: "pretty"})
	require.IsType(t, &slog.TextHandler{}, textLogger.Handler())
}

func TestNewLoggerLevelPerEnvironment(t *testing.T) {
	dev := NewLogger(&Config{AppEnv: "development"})
	require.True(t, dev.Handler().Enabled(context.Background(), slog.LevelDebug))

	prod := NewLogger(&Config{AppEnv: "production"})
	require.False(t, prod.Handler().Enabled(context.Background(), slog.LevelDebug))
	require.True(t, prod.Handler().Enabled(context.Background(), slog.LevelInfo))
}
