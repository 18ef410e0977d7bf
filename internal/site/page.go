// Package site renders the portfolio page and writes the static build.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/vinnych/portfolio/internal/logging"
	"github.com/vinnych/portfolio/internal/projects"
	"github.com/vinnych/portfolio/internal/viewport"
)

// Profile is the static page content.
type Profile struct {
	Name    string
	Title   string
	Tagline string
	Email   string
	GitHub  string
	Skills  []string
	// About is markdown rendered into the about section.
	About []byte
}

// pageData holds the data passed to the page template.
type pageData struct {
	Profile
	About    template.HTML
	Initials string
	Year     int
}

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("dracula"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// RenderMarkdown converts the about text to HTML. Raw HTML in the source is
// dropped.
func RenderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// NewDocument renders the page for profile and parses it.
func NewDocument(p Profile, now time.Time) (*Document, error) {
	about, err := RenderMarkdown(p.About)
	if err != nil {
		return nil, err
	}
	data := pageData{
		Profile:  p,
		About:    about,
		Initials: initials(p.Name),
		Year:     now.Year(),
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return ParseDocument(&buf)
}

func initials(name string) string {
	var sb strings.Builder
	for _, f := range strings.Fields(name) {
		sb.WriteString(strings.ToUpper(string([]rune(f)[:1])))
	}
	if sb.Len() == 0 {
		return "~"
	}
	return sb.String()
}

// Renderer produces a fully loaded page document.
type Renderer struct {
	Profile   Profile
	Loader    *projects.Loader
	Selectors []string
	// Viewport holds the affordance thresholds written into the page for
	// the script. The zero value means viewport.DefaultOptions.
	Viewport viewport.Options
	Logger   *zap.Logger
	Now      func() time.Time
}

// Page is one rendered page view.
type Page struct {
	Doc      *Document
	Result   projects.Result
	Observed []string
}

// Render builds the document, starts the project load in the background,
// registers the fade-in elements while the load is in flight, and waits for
// the load. With offline set, the fallback cards are rendered without a
// network call.
func (r *Renderer) Render(ctx context.Context, offline bool) (*Page, error) {
	logger := logging.OrNop(r.Logger)
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	doc, err := NewDocument(r.Profile, now())
	if err != nil {
		return nil, err
	}

	var task *projects.Task
	if !offline {
		task = r.Loader.Start(ctx, doc)
		defer task.Cancel()
	}

	selectors := r.Selectors
	if selectors == nil {
		selectors = viewport.FadeSelectors
	}
	observed, err := doc.MarkFadeIn(selectors)
	if err != nil {
		return nil, err
	}
	vp := r.Viewport
	if vp == (viewport.Options{}) {
		vp = viewport.DefaultOptions()
	}
	doc.SetViewportOptions(vp)

	var res projects.Result
	if offline {
		res = r.Loader.Offline(doc)
	} else {
		res = task.Wait()
	}
	if res.Canceled() {
		return nil, fmt.Errorf("rendering page: %w", res.Err)
	}
	if res.Err != nil && !res.Fallback {
		return nil, fmt.Errorf("rendering projects: %w", res.Err)
	}

	logger.Debug("page rendered",
		zap.String("source", res.Source()),
		zap.Int("cards", len(res.Cards)),
		zap.Int("observed", len(observed)))
	return &Page{Doc: doc, Result: res, Observed: observed}, nil
}
