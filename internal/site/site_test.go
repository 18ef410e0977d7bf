package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vinnych/portfolio/internal/github"
	"github.com/vinnych/portfolio/internal/progress"
	"github.com/vinnych/portfolio/internal/projects"
	"github.com/vinnych/portfolio/internal/viewport"
)

type stubSource struct {
	repos []github.Repository
	err   error
}

func (s stubSource) ListUserRepositories(ctx context.Context, user string, perPage int) ([]github.Repository, error) {
	return s.repos, s.err
}

var testProfile = Profile{
	Name:   "Bhushan Chilakapati",
	Title:  "Software Developer",
	Email:  "hi@example.dev",
	GitHub: "vinnych",
	Skills: []string{"Go", "TypeScript"},
	About:  []byte("I like **small** tools.\n\nAnd big ideas."),
}

func fixedNow() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

func newDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument(testProfile, fixedNow())
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return doc
}

func render(t *testing.T, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestDocumentAppendCard(t *testing.T) {
	doc := newDoc(t)
	card := projects.NewCard(github.Repository{
		Name:        "cli-tool",
		Description: "A <b>tiny</b> CLI",
		Language:    "Rust",
		Stars:       42,
		HTMLURL:     "https://github.com/vinnych/cli-tool",
	}, 2, projects.DefaultStagger)

	if err := doc.Clear(projects.ContainerID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := doc.Append(projects.ContainerID, card); err != nil {
		t.Fatalf("Append: %v", err)
	}

	out := render(t, doc)
	for _, want := range []string{
		`href="https://github.com/vinnych/cli-tool"`,
		`target="_blank"`,
		`rel="noopener"`,
		`class="project-card fade-in"`,
		`id="project-card-2"`,
		`transition-delay: 160ms`,
		`<div class="project-name">cli tool</div>`,
		`A &lt;b&gt;tiny&lt;/b&gt; CLI`,
		`background: #ce4a00`,
		`⭐ 42`,
		`project-link-icon`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(out, "Loading projects") {
		t.Error("placeholder should have been cleared")
	}
}

func TestDocumentCardBadges(t *testing.T) {
	doc := newDoc(t)
	doc.Clear(projects.ContainerID)
	card := projects.NewCard(github.Repository{Name: "plain", HTMLURL: "https://github.com/vinnych/plain"}, 0, projects.DefaultStagger)
	if err := doc.Append(projects.ContainerID, card); err != nil {
		t.Fatalf("Append: %v", err)
	}
	out := render(t, doc)
	if strings.Contains(out, "lang-dot") {
		t.Error("language badge shown for Code label")
	}
	if strings.Contains(out, "⭐") {
		t.Error("star badge shown for zero stars")
	}
	if strings.Contains(out, "transition-delay") {
		t.Error("first card should carry no delay")
	}
}

func TestDocumentFallbackCard(t *testing.T) {
	doc := newDoc(t)
	doc.Clear(projects.ContainerID)
	for _, c := range projects.FallbackCards() {
		if err := doc.Append(projects.ContainerID, c); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	ids, err := doc.QueryAll("#projects-grid > a.project-card")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"project-fallback-1", "project-fallback-2", "project-fallback-3"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("card ids = %v", ids)
	}
	if fades, _ := doc.QueryAll(".project-card.fade-in"); len(fades) != 0 {
		t.Errorf("fallback cards should not fade in: %v", fades)
	}
	if strings.Contains(render(t, doc), "project-link-icon") {
		t.Error("fallback cards have no external link glyph")
	}
}

func TestDocumentSetText(t *testing.T) {
	doc := newDoc(t)
	doc.SetText(projects.StatID, "6")
	if got, ok := doc.Text(projects.StatID); !ok || got != "6" {
		t.Errorf("stat text = %q, %v", got, ok)
	}
	// Missing element: silently ignored.
	doc.SetText("does-not-exist", "x")
	if _, ok := doc.Text("does-not-exist"); ok {
		t.Error("missing element reported present")
	}
}

func TestDocumentMissingContainer(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<html><body><p>empty</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Clear(projects.ContainerID); err == nil {
		t.Error("expected error clearing a missing container")
	}
	if err := doc.Append(projects.ContainerID, projects.FallbackCards()[0]); err == nil {
		t.Error("expected error appending to a missing container")
	}
}

func TestDocumentReveal(t *testing.T) {
	doc := newDoc(t)
	doc.Reveal(projects.ContainerID, 50*time.Millisecond)
	if !strings.Contains(render(t, doc), `data-reveal-delay="50"`) {
		t.Error("reveal delay not recorded")
	}
}

func TestDocumentMarkFadeIn(t *testing.T) {
	doc := newDoc(t)
	ids, err := doc.MarkFadeIn(viewport.FadeSelectors)
	if err != nil {
		t.Fatalf("MarkFadeIn: %v", err)
	}
	// hero-stats, 3 section labels, 3 section titles, 2 about paragraphs,
	// skill tags, about card, 2 contact cards.
	if len(ids) != 13 {
		t.Fatalf("marked %d elements, want 13: %v", len(ids), ids)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if id == "" || seen[id] {
			t.Errorf("bad or duplicate id %q", id)
		}
		seen[id] = true
		if !doc.HasClass(id, viewport.ClassFadeIn) {
			t.Errorf("%s missing fade-in class", id)
		}
	}
	marked, _ := doc.QueryAll("[data-observe]")
	if len(marked) != len(ids) {
		t.Errorf("data-observe on %d elements, want %d", len(marked), len(ids))
	}
	if doc.HasClass(ids[0], viewport.ClassVisible) {
		t.Error("visible must not be set before the first intersection check")
	}
}

func TestDocumentApply(t *testing.T) {
	doc := newDoc(t)
	doc.Apply([]viewport.ClassOp{{ID: "navbar", Class: "scrolled", On: true}, {ID: "ghost", Class: "x", On: true}})
	if !doc.HasClass("navbar", "scrolled") {
		t.Fatal("scrolled not added")
	}
	doc.Apply([]viewport.ClassOp{{ID: "navbar", Class: "scrolled", On: true}})
	if strings.Count(render(t, doc), "scrolled") != 1 {
		t.Error("class added twice")
	}
	doc.Apply([]viewport.ClassOp{{ID: "navbar", Class: "scrolled", On: false}})
	if doc.HasClass("navbar", "scrolled") || !doc.HasClass("navbar", "navbar") {
		t.Error("remove should drop only the scrolled class")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown([]byte("Hello **world**\n\n<script>alert(1)</script>"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<strong>world</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
	if strings.Contains(string(out), "<script>") {
		t.Error("raw html should be omitted")
	}
}

func TestRendererLive(t *testing.T) {
	src := stubSource{repos: []github.Repository{
		{Name: "a", HTMLURL: "https://github.com/vinnych/a"},
		{Name: "b", Fork: true, HTMLURL: "https://github.com/vinnych/b"},
	}}
	r := &Renderer{
		Profile: testProfile,
		Loader:  projects.NewLoader(src, projects.Options{Username: "vinnych"}, nil),
		Now:     fixedNow,
	}
	page, err := r.Render(context.Background(), false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if page.Result.Fallback || len(page.Result.Cards) != 1 {
		t.Fatalf("result = %+v", page.Result)
	}
	if got, _ := page.Doc.Text(projects.StatID); got != "1" {
		t.Errorf("stat = %q", got)
	}
	if len(page.Observed) == 0 {
		t.Error("no elements registered for fade-in")
	}
	out := render(t, page.Doc)
	if !strings.Contains(out, "© 2026 Bhushan Chilakapati") {
		t.Error("footer year missing")
	}
}

func TestRendererFallback(t *testing.T) {
	r := &Renderer{
		Profile: testProfile,
		Loader:  projects.NewLoader(stubSource{err: errors.New("boom")}, projects.Options{}, nil),
		Now:     fixedNow,
	}
	page, err := r.Render(context.Background(), false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !page.Result.Fallback {
		t.Fatal("expected fallback")
	}
	ids, _ := page.Doc.QueryAll("#projects-grid > .project-card")
	if len(ids) != 3 {
		t.Errorf("fallback cards = %d", len(ids))
	}
	if live, _ := page.Doc.QueryAll(`[id^="project-card-"]`); len(live) != 0 {
		t.Errorf("live cards present: %v", live)
	}
}

func TestRendererMalformedBody(t *testing.T) {
	for _, body := range []string{`null`, `[null]`} {
		t.Run(body, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			}))
			defer ts.Close()

			client, err := github.NewClient("", ts.URL)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			r := &Renderer{
				Profile: testProfile,
				Loader:  projects.NewLoader(client, projects.Options{Username: "vinnych"}, nil),
				Now:     fixedNow,
			}
			page, err := r.Render(context.Background(), false)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !page.Result.Fallback || len(page.Result.Cards) != 3 {
				t.Fatalf("result = %+v", page.Result)
			}
			if !errors.Is(page.Result.Err, github.ErrMalformedList) {
				t.Errorf("err = %v", page.Result.Err)
			}
			if got, _ := page.Doc.Text(projects.StatID); got == "0" {
				t.Error("stat set for a malformed body")
			}
			ids, _ := page.Doc.QueryAll("#projects-grid > .project-card")
			if len(ids) != 3 {
				t.Errorf("cards in grid = %d", len(ids))
			}
		})
	}
}

func TestRendererViewportOptions(t *testing.T) {
	tests := []struct {
		name string
		opts viewport.Options
		want [3]string
	}{
		{"defaults", viewport.Options{}, [3]string{"40", "0.1", "-40"}},
		{"custom", viewport.Options{NavbarThreshold: 64, FadeThreshold: 0.25, FadeMarginBottom: -10}, [3]string{"64", "0.25", "-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{
				Profile:  testProfile,
				Loader:   projects.NewLoader(nil, projects.Options{}, nil),
				Viewport: tt.opts,
				Now:      fixedNow,
			}
			page, err := r.Render(context.Background(), true)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			got := [3]string{
				page.Doc.BodyAttr(AttrNavbarThreshold),
				page.Doc.BodyAttr(AttrFadeThreshold),
				page.Doc.BodyAttr(AttrFadeMarginBottom),
			}
			if got != tt.want {
				t.Errorf("body attributes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRendererCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Renderer{
		Profile: testProfile,
		Loader:  projects.NewLoader(stubSource{err: context.Canceled}, projects.Options{}, nil),
	}
	if _, err := r.Render(ctx, false); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	var log bytes.Buffer
	out := t.TempDir()
	assetsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(assetsDir, "avatar.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := &Generator{
		Renderer: &Renderer{
			Profile: testProfile,
			Loader:  projects.NewLoader(nil, projects.Options{}, nil),
			Now:     fixedNow,
		},
		OutputDir: out,
		AssetsDir: assetsDir,
		Assets:    []string{"**/*.png"},
		Reporter:  &progress.LineReporter{Out: &log},
	}
	sum, err := g.Generate(context.Background(), true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{"[1/4] Loading projects", "[4/4] Copying assets", "Site built in"} {
		if !strings.Contains(log.String(), want) {
			t.Errorf("progress missing %q:\n%s", want, log.String())
		}
	}
	if sum.Source != "fallback" || sum.Cards != 3 || sum.Assets != 1 {
		t.Errorf("summary = %+v", sum)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "projects.json", "avatar.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(out, "projects.json"))
	if err != nil {
		t.Fatal(err)
	}
	var payload ProjectsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("projects.json: %v", err)
	}
	if payload.Source != "fallback" || payload.Count != 3 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGenerateScriptWorksWithoutSocket(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Renderer: &Renderer{
			Profile: testProfile,
			Loader:  projects.NewLoader(nil, projects.Options{}, nil),
			Now:     fixedNow,
		},
		OutputDir: out,
	}
	if _, err := g.Generate(context.Background(), true); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	script, err := os.ReadFile(filepath.Join(out, "script.js"))
	if err != nil {
		t.Fatal(err)
	}
	js := string(script)
	for _, want := range []string{
		"classList.toggle('scrolled', window.scrollY > navbarThreshold)",
		"new IntersectionObserver(",
		"rootMargin: '0px 0px ' + fadeMarginBottom + 'px 0px'",
		"entry.target.classList.add('visible')",
		"io.unobserve(entry.target)",
		"option('" + AttrNavbarThreshold + "', 40)",
		"option('" + AttrFadeThreshold + "', 0.1)",
		"option('" + AttrFadeMarginBottom + "', -40)",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("script.js missing %q", want)
		}
	}

	// The local rules must not depend on the socket being open, and a
	// dropped socket must hand over to them.
	local := js[strings.Index(js, "function runLocally()"):strings.Index(js, "if (!('WebSocket' in window)")]
	if strings.Contains(local, "open") {
		t.Error("local rules gated on the socket")
	}
	onclose := js[strings.Index(js, "ws.onclose"):]
	onclose = onclose[:strings.Index(onclose, "};")]
	if !strings.Contains(onclose, "runLocally()") || strings.Contains(onclose, "if (!open)") {
		t.Errorf("onclose does not fall back unconditionally: %s", onclose)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		AttrNavbarThreshold + `="40"`,
		AttrFadeThreshold + `="0.1"`,
		AttrFadeMarginBottom + `="-40"`,
	} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html missing %s", want)
		}
	}
}

func TestGenerateReportsFailure(t *testing.T) {
	var log bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{
		Renderer: &Renderer{
			Profile: testProfile,
			Loader:  projects.NewLoader(stubSource{err: context.Canceled}, projects.Options{}, nil),
		},
		OutputDir: t.TempDir(),
		Reporter:  &progress.LineReporter{Out: &log},
	}
	if _, err := g.Generate(ctx, false); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !strings.Contains(log.String(), `Site build failed during "Loading projects"`) {
		t.Errorf("failure not reported:\n%s", log.String())
	}
}
