package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: frugal-friend
  time_zone: Asia/Jakarta
api:
  port: 9090
ai:
  provider: gemini
  timeout: 3s
gemini:
  model: gemini-2.0-flash
  max_token_per_minute: 100000
lock:
  driver: redis
  ttl: 2s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "frugal-friend", cfg.App.Name)
	assert.Equal(t, "Asia/Jakarta", cfg.App.TimeZone)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, 3*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 100000, cfg.Gemini.MaxTokenPerMinute)
	assert.Equal(t, "redis", cfg.Lock.Driver)
	assert.Equal(t, 2*time.Second, cfg.Lock.TTL)

	// defaults
	assert.Equal(t, 25*time.Millisecond, cfg.Lock.RetryInterval)
	assert.Equal(t, 10*time.Minute, cfg.Coach.SummaryCacheTTL)
	assert.Equal(t, 10, cfg.Gemini.MaxRequestPerMinute)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-from-env")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "gemini-from-env", cfg.Gemini.Model)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "memory", cfg.Lock.Driver)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAI.BaseURL)
}
