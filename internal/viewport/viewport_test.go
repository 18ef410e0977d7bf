package viewport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNavbarScrolled(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{40, false},
		{40.5, true},
		{41, true},
		{5000, true},
	}
	for _, tt := range tests {
		if got := NavbarScrolled(tt.offset, DefaultNavbarThreshold); got != tt.want {
			t.Errorf("NavbarScrolled(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestNavbarToggle(t *testing.T) {
	n := NewNavbarToggle(DefaultNavbarThreshold)

	ops := n.React(Event{Kind: EventScroll, ScrollY: 0})
	if diff := cmp.Diff([]ClassOp{{ID: "navbar", Class: "scrolled", On: false}}, ops); diff != "" {
		t.Errorf("initial op mismatch (-want +got):\n%s", diff)
	}

	ops = n.React(Event{Kind: EventScroll, ScrollY: 41})
	if diff := cmp.Diff([]ClassOp{{ID: "navbar", Class: "scrolled", On: true}}, ops); diff != "" {
		t.Errorf("scroll down op mismatch (-want +got):\n%s", diff)
	}

	// Same side of the threshold: no further effect.
	if ops := n.React(Event{Kind: EventScroll, ScrollY: 300}); len(ops) != 0 {
		t.Errorf("expected no ops, got %v", ops)
	}

	ops = n.React(Event{Kind: EventScroll, ScrollY: 0})
	if diff := cmp.Diff([]ClassOp{{ID: "navbar", Class: "scrolled", On: false}}, ops); diff != "" {
		t.Errorf("scroll up op mismatch (-want +got):\n%s", diff)
	}
	if n.Scrolled() {
		t.Error("navbar should not be scrolled at offset 0")
	}
}

func TestNavbarToggleNoHysteresis(t *testing.T) {
	n := NewNavbarToggle(DefaultNavbarThreshold)
	for _, y := range []float64{41, 40, 41, 40} {
		n.React(Event{Kind: EventScroll, ScrollY: y})
		if n.Scrolled() != NavbarScrolled(y, DefaultNavbarThreshold) {
			t.Errorf("offset %v: scrolled=%v", y, n.Scrolled())
		}
	}
}

var viewport800 = Size{Width: 1200, Height: 800}

func TestWatcherRatio(t *testing.T) {
	w := NewWatcher(DefaultFadeThreshold, Margin{Bottom: DefaultFadeMarginBottom})
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{"fully inside", Rect{X: 0, Y: 100, Width: 100, Height: 100}, 1},
		{"below viewport", Rect{X: 0, Y: 900, Width: 100, Height: 100}, 0},
		{"inside the bottom margin band", Rect{X: 0, Y: 770, Width: 100, Height: 20}, 0},
		{"half above the margin line", Rect{X: 0, Y: 710, Width: 100, Height: 100}, 0.5},
		{"scrolled past the top", Rect{X: 0, Y: -150, Width: 100, Height: 200}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Ratio(viewport800, tt.rect); got != tt.want {
				t.Errorf("Ratio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcherThresholdCrossing(t *testing.T) {
	w := NewWatcher(DefaultFadeThreshold, Margin{Bottom: DefaultFadeMarginBottom})
	w.Observe("about")

	// 5% above the margin line: below threshold.
	below := []ElementRect{{ID: "about", Rect: Rect{Y: 755, Width: 100, Height: 100}}}
	if ops := w.Check(viewport800, below); len(ops) != 0 {
		t.Fatalf("element below threshold revealed: %v", ops)
	}
	if w.Revealed("about") {
		t.Fatal("element below threshold marked revealed")
	}

	// 10%: meets threshold.
	at := []ElementRect{{ID: "about", Rect: Rect{Y: 750, Width: 100, Height: 100}}}
	ops := w.Check(viewport800, at)
	if diff := cmp.Diff([]ClassOp{{ID: "about", Class: "visible", On: true}}, ops); diff != "" {
		t.Errorf("reveal op mismatch (-want +got):\n%s", diff)
	}

	// Leaving the viewport never removes the class or re-emits.
	gone := []ElementRect{{ID: "about", Rect: Rect{Y: 2000, Width: 100, Height: 100}}}
	if ops := w.Check(viewport800, gone); len(ops) != 0 {
		t.Errorf("expected no ops after leaving, got %v", ops)
	}
	if ops := w.Check(viewport800, at); len(ops) != 0 {
		t.Errorf("expected no ops on re-entry, got %v", ops)
	}
	if !w.Revealed("about") {
		t.Error("revealed state lost")
	}
}

func TestWatcherIgnoresUnregistered(t *testing.T) {
	w := NewWatcher(DefaultFadeThreshold, Margin{})
	w.Observe("a")
	w.Observe("a")
	w.Observe("")

	rects := []ElementRect{
		{ID: "a", Rect: Rect{Y: 10, Width: 10, Height: 10}},
		{ID: "stranger", Rect: Rect{Y: 10, Width: 10, Height: 10}},
	}
	ops := w.Check(viewport800, rects)
	if len(ops) != 1 || ops[0].ID != "a" {
		t.Errorf("ops = %v", ops)
	}
	if diff := cmp.Diff([]string{"a"}, w.Observed()); diff != "" {
		t.Errorf("observed mismatch (-want +got):\n%s", diff)
	}
}

func TestWatcherReactOnlyToLayout(t *testing.T) {
	w := NewWatcher(DefaultFadeThreshold, Margin{})
	w.Observe("a")
	e := Event{Kind: EventScroll, Viewport: viewport800, Rects: []ElementRect{{ID: "a", Rect: Rect{Width: 10, Height: 10}}}}
	if ops := w.React(e); len(ops) != 0 {
		t.Errorf("scroll events carry no geometry, got %v", ops)
	}
	e.Kind = EventLayout
	if ops := w.React(e); len(ops) != 1 {
		t.Errorf("layout event ops = %v", ops)
	}
}

func TestSessionApply(t *testing.T) {
	s := NewSession("s1", DefaultOptions())
	s.Fade.Observe("title")

	ops := s.Apply(Event{
		Kind:     EventLayout,
		ScrollY:  120,
		Viewport: viewport800,
		Rects:    []ElementRect{{ID: "title", Rect: Rect{Y: 200, Width: 300, Height: 40}}},
	})
	want := []ClassOp{
		{ID: "navbar", Class: "scrolled", On: true},
		{ID: "title", Class: "visible", On: true},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}
