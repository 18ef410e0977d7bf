package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/vinnych/portfolio/internal/config"
	"github.com/vinnych/portfolio/internal/github"
	"github.com/vinnych/portfolio/internal/projects"
	"github.com/vinnych/portfolio/internal/site"
	"github.com/vinnych/portfolio/internal/viewport"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer wires the GitHub client, project loader and profile from cfg.
func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	client, err := github.NewClient(cfg.GitHub.Token, cfg.GitHub.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating github client: %w", err)
	}

	loader := projects.NewLoader(client, loaderOptions(cfg), logger)

	profile, err := profileFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &site.Renderer{
		Profile:   profile,
		Loader:    loader,
		Selectors: viewport.FadeSelectors,
		Viewport:  viewportOptions(cfg),
		Logger:    logger,
	}, nil
}

// loaderOptions builds the loader options from cfg. A configured delay of 0
// is passed as disabled.
func loaderOptions(cfg *config.Config) projects.Options {
	return projects.Options{
		Username:    cfg.GitHub.Username,
		PageSize:    cfg.GitHub.PageSize,
		Limit:       cfg.Projects.Limit,
		Stagger:     configDelay(cfg.Projects.StaggerMS),
		RevealDelay: configDelay(cfg.Projects.RevealDelayMS),
	}
}

func configDelay(ms int) time.Duration {
	if ms == 0 {
		return -1
	}
	return time.Duration(ms) * time.Millisecond
}

func profileFromConfig(cfg *config.Config) (site.Profile, error) {
	p := site.Profile{
		Name:    cfg.Profile.Name,
		Title:   cfg.Profile.Title,
		Tagline: cfg.Profile.Tagline,
		Email:   cfg.Profile.Email,
		GitHub:  cfg.GitHub.Username,
		Skills:  cfg.Profile.Skills,
	}
	if cfg.Profile.AboutFile == "" {
		return p, nil
	}
	about, err := os.ReadFile(cfg.Profile.AboutFile)
	if err != nil {
		return p, fmt.Errorf("reading about file: %w", err)
	}
	p.About = about
	return p, nil
}

func viewportOptions(cfg *config.Config) viewport.Options {
	return viewport.Options{
		NavbarThreshold:  cfg.Viewport.NavbarThreshold,
		FadeThreshold:    cfg.Viewport.FadeThreshold,
		FadeMarginBottom: cfg.Viewport.FadeMarginBottom,
	}
}
