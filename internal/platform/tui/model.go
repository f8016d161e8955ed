package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keyloop/internal/engine"
)

// ChromeRows is the number of terminal rows used outside the scene:
// the title line and the help footer.
const ChromeRows = 2

// Model is the Bubble Tea model driving one engine loop.
type Model struct {
	loop     *engine.Loop
	window   *Window
	keys     KeyMap
	help     help.Model
	theme    Theme
	title    string
	interval time.Duration
	quitting bool
}

// Options configures a Model.
type Options struct {
	Title string

	// Interval between loop iterations.
	Interval time.Duration

	Theme Theme
}

// NewModel creates a model over a loop whose window is w.
func NewModel(loop *engine.Loop, w *Window, opts Options) Model {
	theme := opts.Theme
	if theme.Name == "" {
		theme = DefaultTheme()
	}
	w.SetPalette(theme.Palette)

	return Model{
		loop:     loop,
		window:   w,
		keys:     NewKeyMap(loop.Context().Bind),
		help:     help.New(),
		theme:    theme,
		title:    opts.Title,
		interval: opts.Interval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes a key to the window, except for the quit and help keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// The loop sees the close on the next tick and stops there.
		m.window.Close()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.window.KeyDown(msg.String())
	return m, nil
}

// handleResize fits the scene between the title and the footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.window.Resize(msg.Width, msg.Height-ChromeRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop iteration and quits once the loop has stopped.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.loop.Step()
	if !m.loop.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the title, the last displayed frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render(m.title))
	sb.WriteRune('\n')
	sb.WriteString(m.window.Frame())
	sb.WriteRune('\n')
	sb.WriteString(m.theme.Status.Render(m.help.View(m.keys)))
	return sb.String()
}

// Run starts the Bubble Tea program and blocks until the loop stops or ctx
// is cancelled.
func Run(ctx context.Context, loop *engine.Loop, w *Window, opts Options) error {
	p := tea.NewProgram(
		NewModel(loop, w, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
