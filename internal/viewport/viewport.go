// Package viewport implements the scroll affordances of the page: the navbar
// style toggle and the one-way fade-in reveal. Both are reactors over a
// stream of viewport events and return class operations for the document.
package viewport

// Class names and ids shared with the page.
const (
	NavbarID      = "navbar"
	ClassScrolled = "scrolled"
	ClassFadeIn   = "fade-in"
	ClassVisible  = "visible"
)

// FadeSelectors lists the content-role elements registered for fade-in.
var FadeSelectors = []string{
	".about-card",
	".contact-card",
	".hero-stats",
	".section-label",
	".section-title",
	".about-text p",
	".about-text .skill-tags",
}

// ClassOp adds (On) or removes a class on the element with ID.
type ClassOp struct {
	ID    string `json:"id"`
	Class string `json:"class"`
	On    bool   `json:"on"`
}

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an element's bounding box relative to the viewport.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ElementRect pairs an element id with its bounding box.
type ElementRect struct {
	ID string `json:"id"`
	Rect
}

// EventKind distinguishes viewport events.
type EventKind string

const (
	EventScroll EventKind = "scroll"
	EventLayout EventKind = "layout"
)

// Event is one viewport signal. Scroll events carry only ScrollY; layout
// events also carry the viewport size and element boxes.
type Event struct {
	Kind     EventKind
	ScrollY  float64
	Viewport Size
	Rects    []ElementRect
}

// Reactor turns an event into class operations.
type Reactor interface {
	React(Event) []ClassOp
}

// Dispatch delivers e to every reactor independently and concatenates the
// resulting operations.
func Dispatch(e Event, reactors ...Reactor) []ClassOp {
	var ops []ClassOp
	for _, r := range reactors {
		ops = append(ops, r.React(e)...)
	}
	return ops
}
