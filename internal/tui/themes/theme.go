// Package themes holds the lipgloss styles used by the browser.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TableHeader lipgloss.Style
	Selected    lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	Box         lipgloss.Style
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Error       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#1f6feb"),
	Muted:   lipgloss.Color("#6e7681"),
	Border:  lipgloss.Color("#30363d"),
	Error:   lipgloss.Color("#f85149"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f0f6fc")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8b949e")),
	ActiveTab: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f0f6fc")).
		Background(lipgloss.Color("#1f6feb")).
		Padding(0, 1),
	InactiveTab: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8b949e")).
		Padding(0, 1),
	TableHeader: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#30363d")).
		BorderBottom(true).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#1f6feb")).
		Foreground(lipgloss.Color("#f0f6fc")).
		Bold(true),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8b949e")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f85149")).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#30363d")).
		Padding(0, 1),
}
