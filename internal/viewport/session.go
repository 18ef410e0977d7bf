package viewport

// Session holds the affordance state for one page view.
type Session struct {
	ID     string
	Navbar *NavbarToggle
	Fade   *Watcher
}

// Options configures a session's reactors.
type Options struct {
	NavbarThreshold  float64
	FadeThreshold    float64
	FadeMarginBottom float64
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		NavbarThreshold:  DefaultNavbarThreshold,
		FadeThreshold:    DefaultFadeThreshold,
		FadeMarginBottom: DefaultFadeMarginBottom,
	}
}

// NewSession creates a session with fresh reactors.
func NewSession(id string, opts Options) *Session {
	return &Session{
		ID:     id,
		Navbar: NewNavbarToggle(opts.NavbarThreshold),
		Fade:   NewWatcher(opts.FadeThreshold, Margin{Bottom: opts.FadeMarginBottom}),
	}
}

// Apply dispatches e to the navbar toggle and the fade-in watcher.
func (s *Session) Apply(e Event) []ClassOp {
	return Dispatch(e, s.Navbar, s.Fade)
}
