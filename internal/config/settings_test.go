package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.NotEmpty(t, s.DBPath)
	assert.Equal(t, DefaultBaseURL, s.Scrape.BaseURL)
	assert.Equal(t, 2.0, s.Scrape.RequestsPerSecond)
	assert.Equal(t, 10*time.Second, s.Scrape.FetchTimeout)
	assert.Equal(t, 3, s.Scrape.MaxDepth)
	assert.Equal(t, 4, s.Scrape.Concurrency)
	assert.Equal(t, 10, s.Search.DefaultLimit)
	assert.Equal(t, 5*time.Minute, s.Search.CacheTTL)

	assert.NoError(t, ValidateSettings(s))
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("AMPLIFY_DOCS_DB_PATH", "/tmp/custom.db")
	t.Setenv("AMPLIFY_DOCS_SCRAPE_MAX_DEPTH", "5")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", s.DBPath)
	assert.Equal(t, 5, s.Scrape.MaxDepth)
}

func TestLoadSettingsFlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--base-url", "https://example.com/docs/", "--rps", "9"}))

	s, err := LoadSettingsWithFlags(flags)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/docs/", s.Scrape.BaseURL)
	assert.Equal(t, 9.0, s.Scrape.RequestsPerSecond)
}

func TestValidateSettings(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	s.Scrape.RequestsPerSecond = 0
	assert.Error(t, ValidateSettings(s))

	s, err = LoadSettings()
	require.NoError(t, err)
	s.DBPath = ""
	assert.Error(t, ValidateSettings(s))
}
