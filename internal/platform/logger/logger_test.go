package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbridge/taskbridge/internal/config"
)

func TestSetup_LogLevels(t *testing.T) {
	tests := []struct {
		name            string
		configuredLevel string
		debugEnabled    bool
		warnEnabled     bool
	}{
		{name: "debug_level", configuredLevel: "debug", debugEnabled: true, warnEnabled: true},
		{name: "info_level", configuredLevel: "info", debugEnabled: false, warnEnabled: true},
		{name: "warn_level", configuredLevel: "warn", debugEnabled: false, warnEnabled: true},
		{name: "error_level", configuredLevel: "error", debugEnabled: false, warnEnabled: false},
		{name: "case_insensitive", configuredLevel: "DEBUG", debugEnabled: true, warnEnabled: true},
		{name: "invalid_falls_back_to_info", configuredLevel: "trace", debugEnabled: false, warnEnabled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.configuredLevel})
			require.NoError(t, err)
			require.NotNil(t, l)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, l.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.warnEnabled, l.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestSetup_SetsDefaultLogger(t *testing.T) {
	l, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	require.NoError(t, err)

	assert.Equal(t, l, slog.Default())
}
