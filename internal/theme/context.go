package theme

import "sync"

// Reader is the read-only view of the theme handed to presenters.
type Reader interface {
	Variant() Variant
	Palette() Palette
	Styles() Styles
}

// Context is the process-wide theme. Only Toggle changes it.
type Context struct {
	mu      sync.RWMutex
	variant Variant
	styles  Styles
}

var _ Reader = (*Context)(nil)

// NewContext returns a Context starting at v.
func NewContext(v Variant) *Context {
	return &Context{variant: v, styles: build(PaletteFor(v))}
}

// Variant returns the active variant.
func (c *Context) Variant() Variant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.variant
}

// Palette returns the active color table.
func (c *Context) Palette() Palette {
	return PaletteFor(c.Variant())
}

// Styles returns the lipgloss styles for the active variant.
func (c *Context) Styles() Styles {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.styles
}

// Toggle flips between Dark and Light and returns the new variant.
func (c *Context) Toggle() Variant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.variant == Dark {
		c.variant = Light
	} else {
		c.variant = Dark
	}
	c.styles = build(PaletteFor(c.variant))
	return c.variant
}
