package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where init writes the configuration.
const DefaultPath = "portfolio.yml"

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's set up your page.")
	fmt.Println()

	cfg := DefaultConfig()

	username, err := (&promptui.Prompt{
		Label:    "GitHub username",
		Default:  cfg.GitHub.Username,
		Validate: required("username"),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("username: %w", err)
	}
	cfg.GitHub.Username = username

	name, err := (&promptui.Prompt{
		Label:   "Display name",
		Default: cfg.Profile.Name,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("display name: %w", err)
	}
	cfg.Profile.Name = name

	title, err := (&promptui.Prompt{
		Label:   "Title",
		Default: cfg.Profile.Title,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Profile.Title = title

	email, err := (&promptui.Prompt{
		Label:   "Contact email (optional)",
		Default: cfg.Profile.Email,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	cfg.Profile.Email = email

	skills, err := (&promptui.Prompt{
		Label:   "Skills (comma-separated)",
		Default: strings.Join(cfg.Profile.Skills, ", "),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	cfg.Profile.Skills = splitAndTrim(skills)

	limitPrompt := promptui.Select{
		Label:     "Projects to show",
		Items:     []string{"3", "6", "9"},
		CursorPos: 1,
	}
	_, limit, err := limitPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project limit: %w", err)
	}
	cfg.Projects.Limit, _ = strconv.Atoi(limit)

	outputDir, err := (&promptui.Prompt{
		Label:   "Output directory",
		Default: cfg.OutputDir,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv("GITHUB_TOKEN") == "" {
		fmt.Println("\nNote: set GITHUB_TOKEN to raise the GitHub API rate limit (optional).")
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(field string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
