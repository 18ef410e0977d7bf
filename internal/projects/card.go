package projects

import (
	"fmt"
	"strings"
	"time"

	"github.com/vinnych/portfolio/internal/github"
)

// Card classes.
const (
	ClassCard   = "project-card"
	ClassFadeIn = "fade-in"
)

// Card is one rendered project tile.
type Card struct {
	ID           string        `json:"id"`
	URL          string        `json:"url"`
	Icon         string        `json:"icon"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Language     string        `json:"language"`
	Color        string        `json:"color"`
	Stars        int           `json:"stars,omitempty"`
	ShowLanguage bool          `json:"show_language"`
	ShowStars    bool          `json:"show_stars"`
	Delay        time.Duration `json:"-"`
	Fallback     bool          `json:"fallback,omitempty"`
}

// Classes returns the class attribute for the card. Live cards take part in
// the reveal animation; fallback cards are shown as-is.
func (c Card) Classes() string {
	if c.Fallback {
		return ClassCard
	}
	return ClassCard + " " + ClassFadeIn
}

// TransitionDelay renders Delay as a CSS transition-delay value, or "" when
// the card has no stagger.
func (c Card) TransitionDelay() string {
	if c.Delay <= 0 {
		return ""
	}
	return fmt.Sprintf("%dms", c.Delay.Milliseconds())
}

// DisplayName replaces hyphens in a repository name with spaces.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// NewCard builds the card for the repository at position index.
func NewCard(repo github.Repository, index int, stagger time.Duration) Card {
	lang := ResolveLanguage(repo.Language)
	return Card{
		ID:           fmt.Sprintf("project-card-%d", index),
		URL:          repo.HTMLURL,
		Icon:         LanguageEmojis.Lookup(lang),
		Name:         DisplayName(repo.Name),
		Description:  ResolveDescription(repo.Name, repo.Description),
		Language:     lang,
		Color:        LanguageColors.Lookup(lang),
		Stars:        repo.Stars,
		ShowLanguage: lang != CodeLabel,
		ShowStars:    repo.Stars > 0,
		Delay:        time.Duration(index) * stagger,
	}
}

// Select drops forks and keeps at most limit repositories in API order.
func Select(repos []github.Repository, limit int) []github.Repository {
	out := make([]github.Repository, 0, min(len(repos), limit))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out
}
