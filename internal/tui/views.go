package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/finsecure-hub/internal/cli"
)

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.bundle == nil {
		return m.renderPlaceholder()
	}

	b := m.bundle
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(cli.ShieldIcon+" FinSecure Hub"),
		m.theme.Subtitle.Render(fmt.Sprintf("scenario %s · seed %d · %s", b.Scenario, b.Seed, b.ID)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		cli.RenderKPIs(b.KPIs),
		m.renderTabs(),
		m.theme.Box.Render(m.table.View()),
		m.renderStatus(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderPlaceholder() string {
	var content string
	if m.lastError != nil {
		content = m.theme.StatusError.Render("Generation failed: " + m.lastError.Error())
	} else {
		content = m.theme.Subtitle.Render("Generating dataset...")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.tables))
	for i, t := range m.tables {
		style := m.theme.InactiveTab
		if i == m.active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(t.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus() string {
	if m.lastError != nil {
		return m.theme.StatusError.Render("Generation failed: " + m.lastError.Error())
	}
	if m.generating {
		return m.theme.StatusBar.Render("Regenerating...")
	}

	t := m.tables[m.active]
	parts := []string{fmt.Sprintf("%s: %d rows", t.Name, len(t.Rows))}
	if len(t.Rows) > 0 {
		parts = append(parts, fmt.Sprintf("row %d", m.table.Cursor()+1))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, " · "))
}
