package tui

import (
	"time"

	"github.com/Veraticus/icd-suggest/internal/matcher"
	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/Veraticus/icd-suggest/internal/tui/themes"
)

// DefaultToastDuration is how long a notification stays on screen.
const DefaultToastDuration = 3 * time.Second

// Config holds TUI configuration.
type Config struct {
	Matcher       *matcher.Matcher
	Theme         themes.Theme
	DebugLogPath  string
	Latency       time.Duration
	ToastDuration time.Duration
	AltScreen     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Matcher:       matcher.NewDefault(),
		Theme:         themes.Default,
		Latency:       1500 * time.Millisecond,
		ToastDuration: DefaultToastDuration,
		AltScreen:     true,
	}
}

// WithReferences sets the reference table shown as sample data and matched against.
func WithReferences(refs []model.ReferenceEntry) Option {
	return func(c *Config) {
		c.Matcher = matcher.New(refs)
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLatency sets the simulated prediction delay. Zero answers immediately.
func WithLatency(d time.Duration) Option {
	return func(c *Config) {
		c.Latency = d
	}
}

// WithToastDuration sets how long notifications are shown.
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) {
		c.ToastDuration = d
	}
}

// WithDebugLog sends log output to path while the form is running.
func WithDebugLog(path string) Option {
	return func(c *Config) {
		c.DebugLogPath = path
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
