package tui

import (
	"github.com/budgielabs/budgie/internal/dashboard"
	"github.com/budgielabs/budgie/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Store  *dashboard.Store
	Theme  themes.Theme
	Width  int
	Height int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithStore sets the dashboard store backing the UI.
func WithStore(store *dashboard.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size. The real size arrives with the
// first window size message.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
