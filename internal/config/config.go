package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A double underscore
// separates nested keys: PORTFOLIO_GITHUB__USERNAME -> github.username.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// The conventional variable is honoured when no token was configured.
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.GitHub.Username == "" {
		return fmt.Errorf("github.username is required")
	}
	if c.GitHub.PageSize < 1 || c.GitHub.PageSize > 100 {
		return fmt.Errorf("github.page_size must be between 1 and 100, got %d", c.GitHub.PageSize)
	}
	if c.Projects.Limit < 1 {
		return fmt.Errorf("projects.limit must be positive")
	}
	if c.Projects.StaggerMS < 0 || c.Projects.RevealDelayMS < 0 {
		return fmt.Errorf("projects delays must be non-negative")
	}
	if c.Viewport.FadeThreshold < 0 || c.Viewport.FadeThreshold > 1 {
		return fmt.Errorf("viewport.fade_threshold must be within [0, 1], got %v", c.Viewport.FadeThreshold)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}
