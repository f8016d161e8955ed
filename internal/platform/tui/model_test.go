package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/engine"
	"github.com/vovakirdan/keyloop/internal/timing"
)

func newTestModel(t *testing.T) (Model, *Window, *timing.ManualClock) {
	t.Helper()
	w := NewWindow(20, 5, time.Hour, time.Hour)
	clock := timing.NewManualClock()
	loop, err := engine.NewLoop(w, engine.NewContext(nil), engine.Hooks{}, engine.Options{
		Cadence: timing.Cadence{UpdateMillis: 10, DrawMillis: 10, DiagnosticMillis: 1000},
		Clock:   clock,
	})
	require.NoError(t, err)
	return NewModel(loop, w, Options{Title: "keyloop", Theme: MonochromeTheme()}), w, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelKeyPressReachesLoop(t *testing.T) {
	m, _, clock := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	clock.Advance(11)
	m, cmd := update(t, m, TickMsg(time.Now()))

	assert.NotNil(t, cmd, "ticking continues")
	keys := m.loop.Context().Keys
	assert.True(t, keys.Held(core.ActionUp))
	assert.True(t, keys.Held(core.ActionRun))
}

func TestModelQuitClosesWindowThenQuits(t *testing.T) {
	m, _, clock := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Nil(t, cmd)
	assert.True(t, m.loop.Running(), "close is handled by the next iteration")

	clock.Advance(11)
	m, cmd = update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestModelResizeReservesChrome(t *testing.T) {
	m, w, _ := newTestModel(t)

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	width, height := w.Size()
	assert.Equal(t, 40, width)
	assert.Equal(t, 12-ChromeRows, height)
}

func TestModelViewShowsTitleFrameAndHelp(t *testing.T) {
	m, _, clock := newTestModel(t)

	clock.Advance(11)
	m, _ = update(t, m, TickMsg(time.Now()))

	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Contains(t, lines[0], "keyloop")
	assert.Contains(t, lines[len(lines)-1], "quit")
}

func TestModelHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
}
