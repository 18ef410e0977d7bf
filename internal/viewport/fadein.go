package viewport

// Margin grows (positive) or shrinks (negative) the root box on each side.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Defaults for the fade-in watcher.
const (
	DefaultFadeThreshold    = 0.1
	DefaultFadeMarginBottom = -40
)

// Watcher tracks registered elements and reports the ones that cross the
// visibility threshold. The visible class is applied once per element and
// never removed.
type Watcher struct {
	Threshold  float64
	RootMargin Margin

	observed map[string]bool // id -> already revealed
	order    []string
}

// NewWatcher creates a watcher with the given threshold and root margin.
func NewWatcher(threshold float64, margin Margin) *Watcher {
	return &Watcher{
		Threshold:  threshold,
		RootMargin: margin,
		observed:   make(map[string]bool),
	}
}

// Observe registers an element. Registering twice is a no-op.
func (w *Watcher) Observe(id string) {
	if _, ok := w.observed[id]; ok || id == "" {
		return
	}
	w.observed[id] = false
	w.order = append(w.order, id)
}

// Observed returns the registered ids in registration order.
func (w *Watcher) Observed() []string {
	return append([]string(nil), w.order...)
}

// Revealed reports whether the element has received the visible class.
func (w *Watcher) Revealed(id string) bool { return w.observed[id] }

// Ratio returns the fraction of r inside the margin-adjusted viewport.
func (w *Watcher) Ratio(vp Size, r Rect) float64 {
	top := -w.RootMargin.Top
	left := -w.RootMargin.Left
	bottom := vp.Height + w.RootMargin.Bottom
	right := vp.Width + w.RootMargin.Right

	ix := overlap(r.X, r.X+r.Width, left, right)
	iy := overlap(r.Y, r.Y+r.Height, top, bottom)
	area := r.Width * r.Height
	if area <= 0 {
		// Zero-area elements count as fully visible when their box touches
		// the root.
		if r.X >= left && r.X <= right && r.Y >= top && r.Y <= bottom {
			return 1
		}
		return 0
	}
	return ix * iy / area
}

// Intersecting reports whether r meets the threshold.
func (w *Watcher) Intersecting(vp Size, r Rect) bool {
	ratio := w.Ratio(vp, r)
	if w.Threshold <= 0 {
		return ratio > 0
	}
	return ratio >= w.Threshold
}

// Check evaluates the given element boxes and returns the visible class
// operation for every registered element that newly meets the threshold.
// Unregistered ids and already revealed elements are ignored.
func (w *Watcher) Check(vp Size, rects []ElementRect) []ClassOp {
	var ops []ClassOp
	for _, er := range rects {
		revealed, ok := w.observed[er.ID]
		if !ok || revealed {
			continue
		}
		if w.Intersecting(vp, er.Rect) {
			w.observed[er.ID] = true
			ops = append(ops, ClassOp{ID: er.ID, Class: ClassVisible, On: true})
		}
	}
	return ops
}

// React implements Reactor. Only layout events carry geometry.
func (w *Watcher) React(e Event) []ClassOp {
	if e.Kind != EventLayout {
		return nil
	}
	return w.Check(e.Viewport, e.Rects)
}

func overlap(a0, a1, b0, b1 float64) float64 {
	lo := max(a0, b0)
	hi := min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
