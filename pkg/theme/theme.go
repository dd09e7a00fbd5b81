// Package theme holds the site's dark/light preference.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Theme is a colour scheme. Its value is written to the data-theme attribute.
type Theme string

// Themes.
const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when nothing has been chosen yet.
const Default = Dark

// ErrUnknownTheme is returned by Parse for anything but dark or light.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse reads a theme name, ignoring case and surrounding space.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// String implements fmt.Stringer.
func (t Theme) String() string { return string(t) }

// Store persists the chosen theme.
type Store interface {
	// Load returns "" with a nil error when nothing has been saved.
	Load() (Theme, error)
	Save(t Theme) error
}

// Context is the current theme shared by everything that renders. The
// zero value is not usable; call NewContext.
type Context struct {
	mu      sync.RWMutex
	current Theme
	store   Store
}

// NewContext restores the persisted theme, falling back to Default when the
// store is empty or holds something unreadable. A nil store keeps the theme
// in memory only.
func NewContext(store Store) (*Context, error) {
	ctx := &Context{current: Default, store: store}
	if store == nil {
		return ctx, nil
	}

	saved, err := store.Load()
	if err != nil {
		return ctx, fmt.Errorf("load theme: %w", err)
	}
	if saved != "" {
		if parsed, perr := Parse(string(saved)); perr == nil {
			ctx.current = parsed
		}
	}
	return ctx, nil
}

// Theme returns the current theme.
func (c *Context) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Set changes and persists the theme.
func (c *Context) Set(t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(t)
}

// Toggle flips between dark and light and returns the new theme. The read
// and the write happen under one lock, so concurrent toggles alternate.
func (c *Context) Toggle() (Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.current.Toggled()
	if err := c.setLocked(next); err != nil {
		return c.current, err
	}
	return next, nil
}

func (c *Context) setLocked(t Theme) error {
	if c.store != nil {
		if err := c.store.Save(t); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
	}
	c.current = t
	return nil
}
