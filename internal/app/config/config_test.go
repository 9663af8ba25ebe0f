package config

import (
	"os"
	"path/filepath"
	"testing"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	cfg := NewInternalConfig()

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseUrl)
	assert.Equal(t, constvars.DefaultRequestTimeoutInMilliseconds, cfg.API.TimeoutInMilliseconds)
	assert.Equal(t, constvars.DefaultRetryAttempts, cfg.API.RetryAttempts)
	assert.Equal(t, constvars.DefaultRetryDelayInMilliseconds, cfg.API.RetryDelayInMilliseconds)
	assert.Equal(t, "token", cfg.API.TokenStorageKey)
	assert.Equal(t, constvars.CredentialsDriverFile, cfg.Credentials.Driver)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clinicctl.yaml")
	content := `
api:
  base_url: https://clinic.example.com/api
  retry_attempts: 1
  rate_limit_per_second: 2.5
credentials:
  driver: redis
redis:
  host: cache.internal
  db: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values over defaults", func(t *testing.T) {
		internalConfig, driverConfig, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://clinic.example.com/api", internalConfig.API.BaseUrl)
		assert.Equal(t, 1, internalConfig.API.RetryAttempts)
		assert.Equal(t, 2.5, internalConfig.API.RateLimitPerSecond)
		assert.Equal(t, constvars.DefaultRequestTimeoutInMilliseconds, internalConfig.API.TimeoutInMilliseconds)
		assert.Equal(t, "redis", internalConfig.Credentials.Driver)
		assert.Equal(t, "cache.internal", driverConfig.Redis.Host)
		assert.Equal(t, 3, driverConfig.Redis.DB)
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("HOMEO_API_BASE_URL", "https://staging.example.com/api")
		t.Setenv("HOMEO_API_TIMEOUT_IN_MILLISECONDS", "5000")

		internalConfig, _, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.com/api", internalConfig.API.BaseUrl)
		assert.Equal(t, 5000, internalConfig.API.TimeoutInMilliseconds)
	})

	t.Run("no file", func(t *testing.T) {
		internalConfig, _, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, NewInternalConfig().API.BaseUrl, internalConfig.API.BaseUrl)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindConfig))
	})

	t.Run("invalid base url", func(t *testing.T) {
		t.Setenv("HOMEO_API_BASE_URL", "not a url")

		_, _, err := Load(path)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *InternalConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(cfg *InternalConfig) {}},
		{name: "unknown driver", mutate: func(cfg *InternalConfig) { cfg.Credentials.Driver = "cookie" }, wantErr: true},
		{name: "unknown output format", mutate: func(cfg *InternalConfig) { cfg.App.OutputFormat = "xml" }, wantErr: true},
		{name: "zero timeout", mutate: func(cfg *InternalConfig) { cfg.API.TimeoutInMilliseconds = 0 }, wantErr: true},
		{name: "too many retries", mutate: func(cfg *InternalConfig) { cfg.API.RetryAttempts = 11 }, wantErr: true},
		{name: "no retries", mutate: func(cfg *InternalConfig) { cfg.API.RetryAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewInternalConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
