package logger

import (
	"bytes"
	"testing"

	"homeo-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zapcore.Level
	}{
		{name: "debug level", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "warn level", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "unknown level falls back to info", level: "verbose", wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tt.level}}
			internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

			logger, err := NewZapLogger(driverConfig, internalConfig)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestNewLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "development"}}, &buf)

	logger.Info("clinicctl started")

	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Contains(t, buf.String(), "clinicctl started")
}
