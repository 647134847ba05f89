package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

type recordingGenerator struct {
	seeds []uint64
	err   error
}

func (g *recordingGenerator) generate(cfg scenario.Config) (*model.DatasetBundle, error) {
	if cfg.Seed != nil {
		g.seeds = append(g.seeds, *cfg.Seed)
	}
	if g.err != nil {
		return nil, g.err
	}
	return scenario.Generate(cfg)
}

func newTestModel(t *testing.T, gen *recordingGenerator) Model {
	t.Helper()
	cfg := defaultConfig()
	for _, opt := range []Option{
		WithScenario(scenario.Default().WithSeed(42)),
		WithGenerator(gen.generate),
		WithSize(120, 40),
	} {
		opt(&cfg)
	}
	return newModel(cfg)
}

// runCmd executes cmd synchronously and feeds its message back into m.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelLoadsBundle(t *testing.T) {
	gen := &recordingGenerator{}
	m := newTestModel(t, gen)

	assert.Contains(t, m.View(), "Generating dataset...")

	m = runCmd(t, m, m.Init())
	require.NotNil(t, m.bundle)
	assert.Equal(t, []uint64{42}, gen.seeds)
	assert.Equal(t, "kpis", m.ActiveTable())

	view := m.View()
	assert.Contains(t, view, "FinSecure Hub")
	assert.Contains(t, view, "seed 42")
	assert.Contains(t, view, "Frauds today")
	assert.Contains(t, view, "kpis: 1 rows")
}

func TestModelTabNavigation(t *testing.T) {
	m := newTestModel(t, &recordingGenerator{})
	m = runCmd(t, m, m.Init())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "transactions", m.ActiveTable())
	assert.Contains(t, m.View(), "transactions: 60 rows")

	m, _ = press(m, runeKey('l'))
	assert.Equal(t, "customers", m.ActiveTable())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "kpis", m.ActiveTable())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "users", m.ActiveTable(), "navigation wraps around")
}

func TestModelEveryTabRenders(t *testing.T) {
	m := newTestModel(t, &recordingGenerator{})
	m = runCmd(t, m, m.Init())

	for range m.tables {
		view := m.View()
		assert.NotEmpty(t, view)
		assert.Contains(t, view, m.ActiveTable()+":")
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	}
}

func TestModelRegenerate(t *testing.T) {
	gen := &recordingGenerator{}
	m := newTestModel(t, gen)
	m = runCmd(t, m, m.Init())
	firstID := m.bundle.ID

	m, cmd := press(m, runeKey('r'))
	assert.True(t, m.generating)
	assert.Contains(t, m.View(), "Regenerating...")

	m = runCmd(t, m, cmd)
	assert.Equal(t, []uint64{42, 43}, gen.seeds)
	assert.Equal(t, uint64(43), m.bundle.Seed)
	assert.NotEqual(t, firstID, m.bundle.ID)
	assert.False(t, m.generating)
}

func TestModelGenerateError(t *testing.T) {
	gen := &recordingGenerator{err: errors.New("boom")}
	m := newTestModel(t, gen)
	m = runCmd(t, m, m.Init())

	assert.Nil(t, m.bundle)
	assert.Contains(t, m.View(), "Generation failed: boom")

	_, cmd := press(m, runeKey('r'))
	assert.Nil(t, cmd, "nothing to regenerate from")
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "q", key: runeKey('q')},
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &recordingGenerator{})
			m = runCmd(t, m, m.Init())

			m, cmd := press(m, tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, &recordingGenerator{})
	m = runCmd(t, m, m.Init())
	before := m.table.Height()

	m, _ = press(m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.table.Height(), before)
	assert.Contains(t, m.View(), "page down")
}

func TestModelResize(t *testing.T) {
	tests := []struct {
		name     string
		loaded   bool
		height   int
		wantRows int
	}{
		{name: "tiny window keeps the floor", height: 10, wantRows: minTableRows},
		{name: "tiny window with columns keeps the floor", loaded: true, height: 10, wantRows: minTableRows},
		{name: "tall window", height: 40, wantRows: 40 - chromeHeight},
		{name: "tall window with columns", loaded: true, height: 40, wantRows: 40 - chromeHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &recordingGenerator{})
			if tt.loaded {
				m = runCmd(t, m, m.Init())
			}
			next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: tt.height})
			m = next.(Model)

			assert.Equal(t, tt.wantRows, m.table.Height())
			assert.Equal(t, 60, m.help.Width)

			m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
			assert.Equal(t, tt.wantRows, m.table.Height(), "after switching tabs")
		})
	}
}

func TestColumnsFor(t *testing.T) {
	m := newTestModel(t, &recordingGenerator{})
	m = runCmd(t, m, m.Init())

	for _, tbl := range m.tables {
		cols := columnsFor(tbl)
		require.Len(t, cols, len(tbl.Header))
		for _, c := range cols {
			assert.LessOrEqual(t, c.Width, maxColumnWidth)
			assert.GreaterOrEqual(t, c.Width, len(strings.TrimSpace(c.Title)))
		}
	}
}
