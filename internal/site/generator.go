package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vinnych/portfolio/internal/assets"
	"github.com/vinnych/portfolio/internal/logging"
	"github.com/vinnych/portfolio/internal/progress"
	"github.com/vinnych/portfolio/internal/projects"
)

// Generator writes the static site: index.html, style.css, script.js,
// projects.json and any matching assets.
type Generator struct {
	Renderer  *Renderer
	OutputDir string
	AssetsDir string
	Assets    []string
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// Summary describes a finished build.
type Summary struct {
	Source string
	Cards  int
	Assets int
}

// ProjectsPayload is the JSON shape of projects.json and /api/projects.
type ProjectsPayload struct {
	Source string          `json:"source"`
	Count  int             `json:"count"`
	Cards  []projects.Card `json:"cards"`
}

// NewProjectsPayload converts a load result for JSON output.
func NewProjectsPayload(res projects.Result) ProjectsPayload {
	cards := res.Cards
	if cards == nil {
		cards = []projects.Card{}
	}
	return ProjectsPayload{Source: res.Source(), Count: len(cards), Cards: cards}
}

// Generate builds the site into OutputDir.
func (g *Generator) Generate(ctx context.Context, offline bool) (sum *Summary, err error) {
	logger := logging.OrNop(g.Logger)
	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}
	rep.Begin(progress.BuildStages)
	defer func() { rep.Done(err) }()

	rep.Enter(progress.StageProjects)
	page, err := g.Renderer.Render(ctx, offline)
	if err != nil {
		return nil, err
	}
	if page.Result.Fallback && !offline {
		logger.Warn("live projects unavailable, site built with fallback cards", zap.Error(page.Result.Err))
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	rep.Enter(progress.StagePage)
	var buf bytes.Buffer
	if err := page.Doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	files := map[string][]byte{
		"index.html": buf.Bytes(),
		"style.css":  []byte(cssContent),
		"script.js":  []byte(jsContent),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
			return nil, err
		}
	}

	rep.Enter(progress.StagePayload)
	payload, err := json.MarshalIndent(NewProjectsPayload(page.Result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding projects: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "projects.json"), payload, 0o644); err != nil {
		return nil, err
	}

	rep.Enter(progress.StageAssets)
	copied := 0
	if g.AssetsDir != "" {
		if _, statErr := os.Stat(g.AssetsDir); statErr == nil {
			copied, err = assets.Copy(g.AssetsDir, g.OutputDir, g.Assets)
			if err != nil {
				return nil, fmt.Errorf("copying assets: %w", err)
			}
		} else {
			logger.Debug("no assets directory", zap.String("dir", g.AssetsDir))
		}
	}

	return &Summary{
		Source: page.Result.Source(),
		Cards:  len(page.Result.Cards),
		Assets: copied,
	}, nil
}

// CSS returns the page stylesheet.
func CSS() string { return cssContent }

// Script returns the page shim.
func Script() string { return jsContent }
