package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the root of the documentation site that gets crawled.
const DefaultBaseURL = "https://docs.amplify.aws/nextjs/"

// ScrapeSettings configuration for the documentation crawler
type ScrapeSettings struct {
	BaseURL           string        `mapstructure:"base_url"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	MaxDepth          int           `mapstructure:"max_depth"`
	Concurrency       int           `mapstructure:"concurrency"`
	MarkdownDir       string        `mapstructure:"markdown_dir"`
}

// SearchSettings configuration for the relevance engine
type SearchSettings struct {
	DefaultLimit int           `mapstructure:"default_limit"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// Settings application settings
type Settings struct {
	DBPath string         `mapstructure:"db_path"`
	Scrape ScrapeSettings `mapstructure:"scrape"`
	Search SearchSettings `mapstructure:"search"`
}

// LoadSettings loads settings from environment variables and defaults.
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("scrape.base_url", DefaultBaseURL)
	v.SetDefault("scrape.requests_per_second", 2.0)
	v.SetDefault("scrape.fetch_timeout", 10*time.Second)
	v.SetDefault("scrape.max_depth", 3)
	v.SetDefault("scrape.concurrency", 4)
	v.SetDefault("scrape.markdown_dir", "")
	v.SetDefault("search.default_limit", 10)
	v.SetDefault("search.cache_ttl", 5*time.Minute)

	v.SetEnvPrefix("AMPLIFY_DOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("db_path", "AMPLIFY_DOCS_DB_PATH")
	_ = v.BindEnv("scrape.base_url", "AMPLIFY_DOCS_SCRAPE_BASE_URL")
	_ = v.BindEnv("scrape.requests_per_second", "AMPLIFY_DOCS_SCRAPE_REQUESTS_PER_SECOND")
	_ = v.BindEnv("scrape.fetch_timeout", "AMPLIFY_DOCS_SCRAPE_FETCH_TIMEOUT")
	_ = v.BindEnv("scrape.max_depth", "AMPLIFY_DOCS_SCRAPE_MAX_DEPTH")
	_ = v.BindEnv("scrape.concurrency", "AMPLIFY_DOCS_SCRAPE_CONCURRENCY")
	_ = v.BindEnv("scrape.markdown_dir", "AMPLIFY_DOCS_SCRAPE_MARKDOWN_DIR")
	_ = v.BindEnv("search.default_limit", "AMPLIFY_DOCS_SEARCH_DEFAULT_LIMIT")
	_ = v.BindEnv("search.cache_ttl", "AMPLIFY_DOCS_SEARCH_CACHE_TTL")

	if flags != nil {
		_ = v.BindPFlag("db_path", flags.Lookup("db-path"))
		_ = v.BindPFlag("scrape.base_url", flags.Lookup("base-url"))
		_ = v.BindPFlag("scrape.requests_per_second", flags.Lookup("rps"))
		_ = v.BindPFlag("scrape.fetch_timeout", flags.Lookup("fetch-timeout"))
		_ = v.BindPFlag("scrape.max_depth", flags.Lookup("max-depth"))
		_ = v.BindPFlag("scrape.concurrency", flags.Lookup("concurrency"))
		_ = v.BindPFlag("scrape.markdown_dir", flags.Lookup("markdown-dir"))
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	settings.DBPath = expandHomeDir(settings.DBPath)
	settings.Scrape.MarkdownDir = expandHomeDir(settings.Scrape.MarkdownDir)

	return &settings, nil
}

// RegisterFlags registers the shared CLI flags on the given FlagSet.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("db-path", "", "Path to the SQLite database file")
	flags.String("base-url", "", "Documentation site root to crawl")
	flags.Float64("rps", 0, "Crawl rate limit in requests per second")
	flags.Duration("fetch-timeout", 0, "Per-request HTTP timeout")
	flags.Int("max-depth", 0, "Link discovery depth from the base URL")
	flags.Int("concurrency", 0, "Concurrent page fetches")
	flags.String("markdown-dir", "", "Directory for exported Markdown files (empty disables export)")
}

// ValidateSettings checks for out-of-range values.
func ValidateSettings(s *Settings) error {
	if s.DBPath == "" {
		return errors.New("db-path cannot be empty")
	}
	if s.Scrape.BaseURL == "" {
		return errors.New("base-url cannot be empty")
	}
	if s.Scrape.RequestsPerSecond <= 0 {
		return errors.New("rps must be positive")
	}
	if s.Scrape.FetchTimeout <= 0 {
		return errors.New("fetch-timeout must be positive")
	}
	if s.Scrape.MaxDepth < 1 {
		return errors.New("max-depth must be at least 1")
	}
	if s.Scrape.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if s.Search.DefaultLimit < 1 {
		return errors.New("default search limit must be at least 1")
	}
	return nil
}

// defaultDBPath returns the default database location.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "amplify_docs.db"
	}
	return filepath.Join(home, ".amplify-docs-mcp", "amplify_docs.db")
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
