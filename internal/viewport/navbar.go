package viewport

// DefaultNavbarThreshold is the scroll offset past which the navbar is styled.
const DefaultNavbarThreshold = 40

// NavbarScrolled reports whether the navbar should carry the scrolled class
// at the given vertical offset.
func NavbarScrolled(offsetY, threshold float64) bool {
	return offsetY > threshold
}

// NavbarToggle keeps the scrolled class on the navbar in sync with the
// scroll offset. It only emits an operation when membership changes.
type NavbarToggle struct {
	ID        string
	Threshold float64
	on        bool
	known     bool
}

// NewNavbarToggle returns a toggle for the #navbar element.
func NewNavbarToggle(threshold float64) *NavbarToggle {
	return &NavbarToggle{ID: NavbarID, Threshold: threshold}
}

// React implements Reactor.
func (n *NavbarToggle) React(e Event) []ClassOp {
	want := NavbarScrolled(e.ScrollY, n.Threshold)
	if n.known && want == n.on {
		return nil
	}
	n.on, n.known = want, true
	return []ClassOp{{ID: n.ID, Class: ClassScrolled, On: want}}
}

// Scrolled reports the last applied state.
func (n *NavbarToggle) Scrolled() bool { return n.on }
