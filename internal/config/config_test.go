package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.Translator.Provider)
	assert.Equal(t, 1000, cfg.Translator.MaxTokens)
	assert.InDelta(t, 0.1, cfg.Translator.Temperature, 0.001)
	assert.Equal(t, "nl", cfg.Translator.SourceLang)
	assert.Equal(t, "en", cfg.Translator.TargetLang)
	assert.Equal(t, 30*time.Second, cfg.Scraper.RequestTimeout)
	assert.True(t, cfg.Scraper.Headless)
	assert.NotEmpty(t, cfg.Scraper.UserAgent)
	assert.Equal(t, "structured_job_analysis.json", cfg.Output.File)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
scraper:
  settle_time: 5s
  rate_limit: 10
translator:
  model: claude-3-5-haiku-latest
  target_lang: de
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Scraper.SettleTime)
	assert.Equal(t, 10, cfg.Scraper.RateLimit)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Translator.Model)
	assert.Equal(t, "de", cfg.Translator.TargetLang)
	assert.Equal(t, "json", cfg.Logging.Format)

	// untouched values keep their defaults
	assert.Equal(t, "claude", cfg.Translator.Provider)
	assert.Equal(t, "nl", cfg.Translator.SourceLang)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TRANSLATOR_API_KEY", "sk-test-123")
	t.Setenv("TRANSLATOR_MODEL", "claude-3-opus-latest")
	t.Setenv("SCRAPER_SETTLE_TIME", "7s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test-123", cfg.Translator.APIKey)
	assert.Equal(t, "claude-3-opus-latest", cfg.Translator.Model)
	assert.Equal(t, 7*time.Second, cfg.Scraper.SettleTime)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("MY_SECRET", "geheim")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "translator:\n  api_key: ${MY_SECRET}\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "geheim", cfg.Translator.APIKey)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "translator:\n  max_tokens: -5\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
