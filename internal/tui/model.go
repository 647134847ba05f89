package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/finsecure-hub/internal/export"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
	"github.com/Veraticus/finsecure-hub/internal/tui/themes"
)

const (
	maxColumnWidth = 28
	// chromeHeight is everything above and below the table: title, subtitle,
	// KPI cards, tab bar, table border, status line and help.
	chromeHeight = 14
	minTableRows = 3
)

// Model is the bubbletea model for the bundle browser.
type Model struct {
	lastError  error
	bundle     *model.DatasetBundle
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	config     Config
	tables     []export.Table
	table      table.Model
	active     int
	width      int
	height     int
	generating bool
	quitting   bool
}

func newModel(cfg Config) Model {
	km := DefaultKeyMap()

	t := table.New(
		table.WithFocused(true),
		table.WithKeyMap(table.KeyMap{
			LineUp:       km.Up,
			LineDown:     km.Down,
			PageUp:       km.PageUp,
			PageDown:     km.PageDown,
			HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
			HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
			GotoTop:      km.Home,
			GotoBottom:   km.End,
		}),
	)
	s := table.DefaultStyles()
	s.Header = cfg.Theme.TableHeader
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		theme:      cfg.Theme,
		keymap:     km,
		help:       h,
		config:     cfg,
		table:      t,
		width:      cfg.Width,
		height:     cfg.Height,
		generating: true,
	}
	m.handleResize()
	return m
}

// Init starts generating the first bundle.
func (m Model) Init() tea.Cmd {
	return m.generate(m.config.Scenario)
}

func (m Model) generate(cfg scenario.Config) tea.Cmd {
	fn := m.config.Generate
	return func() tea.Msg {
		b, err := fn(cfg)
		if err != nil {
			return generateFailedMsg{err: err}
		}
		return bundleGeneratedMsg{bundle: b}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case bundleGeneratedMsg:
		m.generating = false
		m.lastError = nil
		m.bundle = msg.bundle
		m.tables = export.Tables(msg.bundle)
		m.setActive(m.active)
		return m, nil

	case generateFailedMsg:
		m.generating = false
		m.lastError = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey applies browser-level bindings. Keys it does not claim fall
// through to the table.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.handleResize()
		return nil, true

	case key.Matches(msg, m.keymap.NextTab):
		m.setActive(m.active + 1)
		return nil, true

	case key.Matches(msg, m.keymap.PrevTab):
		m.setActive(m.active - 1)
		return nil, true

	case key.Matches(msg, m.keymap.Regenerate):
		if m.bundle == nil || m.generating {
			return nil, true
		}
		m.config.Scenario = m.config.Scenario.WithSeed(m.bundle.Seed + 1)
		m.generating = true
		return m.generate(m.config.Scenario), true
	}
	return nil, false
}

// setActive switches tabs, wrapping at both ends.
func (m *Model) setActive(i int) {
	if len(m.tables) == 0 {
		m.active = 0
		return
	}
	n := len(m.tables)
	m.active = ((i % n) + n) % n

	t := m.tables[m.active]
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, table.Row(r))
	}

	// Rows must be cleared first: the table re-renders on SetColumns and
	// the previous tab's rows may have a different width.
	m.table.SetRows(nil)
	m.table.SetColumns(columnsFor(t))
	m.table.SetRows(rows)
	m.table.SetCursor(0)
	m.handleResize()
}

func (m *Model) handleResize() {
	m.help.Width = m.width
	h := m.height - chromeHeight
	if m.help.ShowAll {
		h -= 3
	}
	if h < minTableRows {
		h = minTableRows
	}
	// SetHeight counts the header rows; add them back so h data rows show.
	m.table.SetHeight(h)
	m.table.SetHeight(h + h - m.table.Height())
}

// ActiveTable returns the name of the table on screen.
func (m Model) ActiveTable() string {
	if len(m.tables) == 0 {
		return ""
	}
	return m.tables[m.active].Name
}

func columnsFor(t export.Table) []table.Column {
	cols := make([]table.Column, len(t.Header))
	for i, h := range t.Header {
		w := lipgloss.Width(h)
		for _, r := range t.Rows {
			if i < len(r) {
				w = max(w, lipgloss.Width(r[i]))
			}
		}
		cols[i] = table.Column{Title: h, Width: min(w, maxColumnWidth)}
	}
	return cols
}
