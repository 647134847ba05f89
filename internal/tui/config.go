package tui

import (
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
	"github.com/Veraticus/finsecure-hub/internal/tui/themes"
)

// GenerateFunc builds a bundle from a scenario config.
type GenerateFunc func(cfg scenario.Config) (*model.DatasetBundle, error)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Generate GenerateFunc
	Scenario scenario.Config
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Generate: scenario.Generate,
		Scenario: scenario.Default(),
		Width:    100,
		Height:   30,
	}
}

// WithScenario sets the config used for the first bundle and for regeneration.
func WithScenario(cfg scenario.Config) Option {
	return func(c *Config) {
		c.Scenario = cfg
	}
}

// WithGenerator replaces scenario.Generate.
func WithGenerator(fn GenerateFunc) Option {
	return func(c *Config) {
		c.Generate = fn
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp starts with the full help expanded.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
