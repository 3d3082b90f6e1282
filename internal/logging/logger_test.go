package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogrusLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"info", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogrusLevel(tt.input))
		})
	}
}

func TestGetSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getSlogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, getSlogLevel("warning"))
	assert.Equal(t, slog.LevelError, getSlogLevel("error"))
	assert.Equal(t, slog.LevelInfo, getSlogLevel("anything"))
}

func TestNewLogrusLogger(t *testing.T) {
	prod := NewLogrusLogger("debug", "production")
	assert.Equal(t, logrus.DebugLevel, prod.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)

	dev := NewLogrusLogger("warn", "development")
	assert.Equal(t, logrus.WarnLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)
}

func TestNewStandardLogger(t *testing.T) {
	logger := NewStandardLogger("info", "development")
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Logger())
	assert.NotNil(t, logger.WithComponent("forecast"))
	assert.NotNil(t, logger.WithModel("ETS"))
}

func TestNewOTLPLogger_Disabled(t *testing.T) {
	logger, err := NewOTLPLogger(OTLPConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Logger())
	assert.NoError(t, logger.Shutdown(context.Background()))
}
