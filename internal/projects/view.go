package projects

import "time"

// Well-known element ids the loader writes to.
const (
	ContainerID = "projects-grid"
	StatID      = "stat-repos"
)

// View is the rendering target of the loader. Implementations report a
// missing container as an error; SetText on a missing element is a no-op.
type View interface {
	// Clear removes every child of the element.
	Clear(id string) error
	// Append adds a card as the last child of the element.
	Append(id string, card Card) error
	// SetText replaces the text content of the element, if present.
	SetText(id, text string)
	// Reveal schedules the live cards inside the element to receive the
	// visible class on the next animation frame after delay.
	Reveal(id string, delay time.Duration)
}
