// Package config loads the pipeline configuration from the environment.
//
// The configuration is read once at process start and handed to each
// component explicitly; nothing else in the program touches the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults for the optional tunables.
const (
	DefaultMaxArticles   = 12
	DefaultMaxThemes     = 4
	DefaultModel         = "gpt-5-mini"
	DefaultNotionVersion = "2022-06-28"
	DefaultSourcesFile   = "config_sources.txt"
	DefaultLogLevel      = "info"
)

// Config holds everything one digest run needs.
type Config struct {
	// Required secrets
	OpenAIAPIKey     string
	NotionToken      string
	NotionDatabaseID string

	// Tunables
	MaxArticles   int
	MaxThemes     int
	Model         string
	NotionVersion string
	SourcesFile   string
	LogLevel      string
}

// Load reads configuration from the environment. Missing required secrets
// are reported together so a misconfigured job fails with a single clear
// message before any network activity.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		NotionToken:      strings.TrimSpace(os.Getenv("NOTION_TOKEN")),
		NotionDatabaseID: strings.TrimSpace(os.Getenv("NOTION_DATABASE_ID")),
		Model:            envOr("OPENAI_MODEL", DefaultModel),
		NotionVersion:    envOr("NOTION_VERSION", DefaultNotionVersion),
		SourcesFile:      envOr("SOURCES_FILE", DefaultSourcesFile),
		LogLevel:         envOr("LOG_LEVEL", DefaultLogLevel),
	}

	var missing []string
	for _, req := range []struct{ name, value string }{
		{"OPENAI_API_KEY", cfg.OpenAIAPIKey},
		{"NOTION_TOKEN", cfg.NotionToken},
		{"NOTION_DATABASE_ID", cfg.NotionDatabaseID},
	} {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.MaxArticles, err = envInt("MAX_ARTICLES", DefaultMaxArticles); err != nil {
		return nil, err
	}
	if cfg.MaxThemes, err = envInt("MAX_THEMES", DefaultMaxThemes); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
