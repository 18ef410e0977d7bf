package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vinnych/portfolio/internal/projects"
	"github.com/vinnych/portfolio/internal/viewport"
)

// Document is a parsed HTML page that the loader and the scroll affordances
// write to. All methods are safe for concurrent use.
type Document struct {
	mu     sync.Mutex
	root   *html.Node
	nextID int
}

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

// ParseDocument parses an HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// Clear removes every child of the element with the given id.
func (d *Document) Clear(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return fmt.Errorf("element #%s not found", id)
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	return nil
}

// Append renders the card and appends it to the element with the given id.
func (d *Document) Append(id string, card projects.Card) error {
	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, card); err != nil {
		return fmt.Errorf("rendering card %s: %w", card.ID, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return fmt.Errorf("element #%s not found", id)
	}
	nodes, err := html.ParseFragment(&buf, n)
	if err != nil {
		return fmt.Errorf("parsing card %s: %w", card.ID, err)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// SetText replaces the element's children with a text node. A missing
// element is ignored.
func (d *Document) SetText(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Reveal records the reveal delay on the container; the page script adds the
// visible class to its live cards on the next animation frame.
func (d *Document) Reveal(id string, delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := d.byID(id); n != nil {
		setAttr(n, "data-reveal-delay", strconv.FormatInt(delay.Milliseconds(), 10))
	}
}

// Text returns the concatenated text content of the element.
func (d *Document) Text(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	if n == nil {
		return "", false
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String(), true
}

// HasClass reports whether the element carries class.
func (d *Document) HasClass(id, class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.byID(id)
	return n != nil && hasClass(n, class)
}

// Apply executes class operations. Operations on missing elements are
// skipped.
func (d *Document) Apply(ops []viewport.ClassOp) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, op := range ops {
		n := d.byID(op.ID)
		if n == nil {
			continue
		}
		if op.On {
			addClass(n, op.Class)
		} else {
			removeClass(n, op.Class)
		}
	}
}

// MarkFadeIn adds the fade-in class and the data-observe marker to every
// element matching one of the selectors, assigning an id where needed. It
// returns the ids in document order.
func (d *Document) MarkFadeIn(selectors []string) ([]string, error) {
	if len(selectors) == 0 {
		return nil, nil
	}
	sel, err := cascadia.Compile(strings.Join(selectors, ", "))
	if err != nil {
		return nil, fmt.Errorf("compiling selectors: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	var ids []string
	for _, n := range sel.MatchAll(d.root) {
		id := attr(n, "id")
		if id == "" {
			d.nextID++
			id = fmt.Sprintf("fade-%d", d.nextID)
			setAttr(n, "id", id)
		}
		addClass(n, viewport.ClassFadeIn)
		setAttr(n, "data-observe", "")
		ids = append(ids, id)
	}
	return ids, nil
}

// Viewport option attributes on <body>. The page script reads them when it
// runs the affordances without the viewport socket.
const (
	AttrNavbarThreshold  = "data-navbar-threshold"
	AttrFadeThreshold    = "data-fade-threshold"
	AttrFadeMarginBottom = "data-fade-margin-bottom"
)

// SetViewportOptions records the affordance thresholds on the body element.
func (d *Document) SetViewportOptions(opts viewport.Options) {
	d.mu.Lock()
	defer d.mu.Unlock()
	body := d.firstElement(atom.Body)
	if body == nil {
		return
	}
	setAttr(body, AttrNavbarThreshold, formatFloat(opts.NavbarThreshold))
	setAttr(body, AttrFadeThreshold, formatFloat(opts.FadeThreshold))
	setAttr(body, AttrFadeMarginBottom, formatFloat(opts.FadeMarginBottom))
}

// BodyAttr returns an attribute of the body element.
func (d *Document) BodyAttr(key string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if body := d.firstElement(atom.Body); body != nil {
		return attr(body, key)
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// QueryAll returns the ids of elements matching selector; elements without
// an id are reported as "".
func (d *Document) QueryAll(selector string) ([]string, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compiling selector %q: %w", selector, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	matches := sel.MatchAll(d.root)
	ids := make([]string, len(matches))
	for i, n := range matches {
		ids[i] = attr(n, "id")
	}
	return ids, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// byID finds an element by id. Callers hold d.mu.
func (d *Document) byID(id string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

// firstElement finds the first element of the given kind. Callers hold d.mu.
func (d *Document) firstElement(a atom.Atom) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	classes := strings.Fields(attr(n, "class"))
	setAttr(n, "class", strings.Join(append(classes, class), " "))
}

func removeClass(n *html.Node, class string) {
	classes := strings.Fields(attr(n, "class"))
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	setAttr(n, "class", strings.Join(kept, " "))
}
