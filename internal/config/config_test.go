package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(home, ".umlgen", "umlgen.db"), cfg.Store.DSN)
	assert.Equal(t, 7200*time.Second, cfg.Store.ModelTTL)
	assert.Equal(t, 3600*time.Second, cfg.Store.HistoryTTL)
	assert.Equal(t, filepath.Join(home, ".umlgen", "feedback.toml"), cfg.Feedback.Path)
	assert.Equal(t, "https://api.together.xyz/v1", cfg.Generation.BaseURL)
	assert.Equal(t, "generation/api_key", cfg.Generation.APIKeyRef)
	assert.Equal(t, 3*time.Minute, cfg.Generation.Timeout)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, 10000, cfg.Generation.MaxTokens)
	assert.Equal(t, "https://www.plantuml.com/plantuml", cfg.Artifact.ServerURL)
	assert.Equal(t, "output_diagrams", cfg.Artifact.OutputDir)
	assert.False(t, cfg.StrictReferences)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".umlgen", "secrets"), cfg.SecretsDir())
	assert.Equal(t, cfg.Feedback.Path, cfg.Viper().GetString(KeyFeedbackPath))
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".umlgen")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[store]
driver = "memory"
model_ttl = "30m"

[feedback]
path = "~/reviews/feedback.toml"

[model]
strict_references = true

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Store.ModelTTL)
	assert.Equal(t, time.Hour, cfg.Store.HistoryTTL)
	assert.Equal(t, filepath.Join(home, "reviews", "feedback.toml"), cfg.Feedback.Path)
	assert.True(t, cfg.StrictReferences)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".umlgen")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[store]\ndriver = \"memory\"\n"), 0o600))

	t.Setenv("UMLGEN_STORE_DRIVER", "postgres")
	t.Setenv("UMLGEN_STORE_DSN", "postgres://umlgen@localhost/umlgen?sslmode=disable")
	t.Setenv("UMLGEN_GENERATION_BASE_URL", "http://localhost:8080/v1")

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://umlgen@localhost/umlgen?sslmode=disable", cfg.Store.DSN)
	assert.Equal(t, "http://localhost:8080/v1", cfg.Generation.BaseURL)
}

func TestLoadKeepsZeroTemperature(t *testing.T) {
	t.Setenv("UMLGEN_GENERATION_TEMPERATURE", "0")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, cfg.Generation.Temperature)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "driver", env: map[string]string{"UMLGEN_STORE_DRIVER": "redis"}, want: `unsupported driver "redis"`},
		{name: "ttl", env: map[string]string{"UMLGEN_STORE_MODEL_TTL": "soon"}, want: KeyStoreModelTTL},
		{name: "negative ttl", env: map[string]string{"UMLGEN_STORE_HISTORY_TTL": "-1h"}, want: "must be positive"},
		{name: "log level", env: map[string]string{"UMLGEN_LOG_LEVEL": "loud"}, want: KeyLogLevel},
		{name: "temperature", env: map[string]string{"UMLGEN_GENERATION_TEMPERATURE": "-0.1"}, want: "must be between 0 and 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := Load(t.TempDir())
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".umlgen")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[store\n"), 0o600))

	_, err := Load(home)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}
