package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db?mode=rwc"

schedule:
  interval: 10m
  max_workers: 8
  conflict_window: 5

fetch:
  timeout: 20s
  user_agent: "custom-agent/2.0"

summary:
  enabled: true
  endpoint: "https://api.openai.com/v1"
  api_key: "sk-test"
  model: "gpt-4o-mini"

cleanup:
  keep_per_feed: 200
  retention_days: 14
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Schedule.Interval)
	assert.Equal(t, 8, cfg.Schedule.MaxWorkers)
	assert.Equal(t, 5, cfg.Schedule.ConflictWindow)
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "custom-agent/2.0", cfg.Fetch.UserAgent)
	assert.True(t, cfg.Summary.Enabled)
	assert.Equal(t, "gpt-4o-mini", cfg.Summary.Model)
	assert.Equal(t, 200, cfg.Cleanup.KeepPerFeed)
	assert.Equal(t, 14, cfg.Cleanup.RetentionDays)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.Interval)
	assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
	assert.Equal(t, 3, cfg.Schedule.ConflictWindow)
	assert.Equal(t, 50, cfg.Schedule.PageSize)
	assert.Equal(t, "Feedsync/1.0", cfg.Fetch.UserAgent)
	assert.False(t, cfg.Summary.Enabled)
	assert.Equal(t, 0.3, cfg.Summary.Temperature)
	assert.Equal(t, time.Hour, cfg.Cleanup.Interval)
	assert.Equal(t, 150, cfg.Cleanup.KeepPerFeed)
	assert.Equal(t, 7, cfg.Cleanup.RetentionDays)
	assert.Equal(t, 3, cfg.Cleanup.SummaryRetentionDays)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_KEY", "sk-from-env")

	cfg, err := Load(writeConfig(t, `
summary:
  enabled: true
  endpoint: "https://api.openai.com/v1"
  api_key: "${TEST_API_KEY}"
  model: "gpt-4o-mini"
`))
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.Summary.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [not a map"))
		require.Error(t, err)
	})

	t.Run("summaries enabled without model", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
summary:
  enabled: true
  endpoint: "https://api.openai.com/v1"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "summary.model is required")
	})

	t.Run("server timeout too small", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  timeout: 100ms\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server timeout")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}

func TestVerifyRequiredFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.NoError(t, VerifyRequiredFields(cfg))

	cfg.Server.Listen = ""
	assert.Error(t, VerifyRequiredFields(cfg))
}
