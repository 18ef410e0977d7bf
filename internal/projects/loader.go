// Package projects turns a user's GitHub repositories into project cards.
package projects

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vinnych/portfolio/internal/github"
	"github.com/vinnych/portfolio/internal/logging"
)

// Source lists a page of a user's repositories.
type Source interface {
	ListUserRepositories(ctx context.Context, user string, perPage int) ([]github.Repository, error)
}

// Options tune the loader. Zero values take the defaults below; a negative
// delay disables it.
type Options struct {
	Username    string
	PageSize    int
	Limit       int
	Stagger     time.Duration
	RevealDelay time.Duration
}

const (
	DefaultPageSize    = 10
	DefaultLimit       = 6
	DefaultStagger     = 80 * time.Millisecond
	DefaultRevealDelay = 50 * time.Millisecond
)

// Result is the outcome of one load.
type Result struct {
	Cards    []Card
	Fallback bool
	// Err is the failure that triggered the fallback, or the context error
	// of a cancelled load. It is nil on success.
	Err error
}

// Source reports "fallback" or "live".
func (r Result) Source() string {
	if r.Fallback {
		return "fallback"
	}
	return "live"
}

// Canceled reports whether the load was abandoned before rendering.
func (r Result) Canceled() bool {
	return errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded)
}

// Loader fetches repositories and renders them into a View.
type Loader struct {
	source Source
	opts   Options
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(source Source, opts Options, logger *zap.Logger) *Loader {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	switch {
	case opts.Stagger == 0:
		opts.Stagger = DefaultStagger
	case opts.Stagger < 0:
		opts.Stagger = 0
	}
	switch {
	case opts.RevealDelay == 0:
		opts.RevealDelay = DefaultRevealDelay
	case opts.RevealDelay < 0:
		opts.RevealDelay = 0
	}
	return &Loader{source: source, opts: opts, logger: logging.OrNop(logger)}
}

// Fetch performs the listing and selection without touching a view.
func (l *Loader) Fetch(ctx context.Context) ([]Card, error) {
	if l.source == nil {
		return nil, errors.New("no repository source configured")
	}
	repos, err := l.source.ListUserRepositories(ctx, l.opts.Username, l.opts.PageSize)
	if err != nil {
		return nil, err
	}
	selected := Select(repos, l.opts.Limit)
	cards := make([]Card, len(selected))
	for i, r := range selected {
		cards[i] = NewCard(r, i, l.opts.Stagger)
	}
	return cards, nil
}

// Load fetches the repositories and replaces the container's contents with
// either the live cards or the fallback set. A cancelled context leaves the
// view untouched.
func (l *Loader) Load(ctx context.Context, view View) Result {
	cards, err := l.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			l.logger.Debug("project load cancelled", zap.Error(ctx.Err()))
			return Result{Err: ctx.Err()}
		}
		l.logger.Warn("GitHub API failed, showing static fallback",
			zap.String("user", l.opts.Username),
			zap.Error(err))
		return l.renderFallback(view, err)
	}

	view.SetText(StatID, strconv.Itoa(len(cards)))
	if err := l.render(view, cards); err != nil {
		return Result{Err: err}
	}
	view.Reveal(ContainerID, l.opts.RevealDelay)

	l.logger.Debug("projects loaded",
		zap.String("user", l.opts.Username),
		zap.Int("cards", len(cards)))
	return Result{Cards: cards}
}

// Offline renders the fallback set without contacting the source.
func (l *Loader) Offline(view View) Result {
	return l.renderFallback(view, nil)
}

func (l *Loader) renderFallback(view View, cause error) Result {
	cards := FallbackCards()
	if err := l.render(view, cards); err != nil {
		return Result{Fallback: true, Err: errors.Join(cause, err)}
	}
	return Result{Cards: cards, Fallback: true, Err: cause}
}

func (l *Loader) render(view View, cards []Card) error {
	if err := view.Clear(ContainerID); err != nil {
		return fmt.Errorf("clearing %s: %w", ContainerID, err)
	}
	for _, c := range cards {
		if err := view.Append(ContainerID, c); err != nil {
			return fmt.Errorf("appending %s: %w", c.ID, err)
		}
	}
	return nil
}
