package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/keyloop/internal/config"
	"github.com/vovakirdan/keyloop/internal/core"
)

// KeyMap holds the help bindings for the demo. Action bindings mirror the
// configured core.KeyBind so the footer shows what is actually bound.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Run   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Run, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Run},
		{k.Help, k.Quit},
	}
}

// NewKeyMap builds the help bindings from bind.
func NewKeyMap(bind *core.KeyBind) KeyMap {
	return KeyMap{
		Up:    actionBinding(bind, core.ActionUp, "move up"),
		Down:  actionBinding(bind, core.ActionDown, "move down"),
		Left:  actionBinding(bind, core.ActionLeft, "move left"),
		Right: actionBinding(bind, core.ActionRight, "move right"),
		Run:   actionBinding(bind, core.ActionRun, "run"),
		Help: key.NewBinding(
			key.WithKeys(config.HelpKey),
			key.WithHelp(config.HelpKey, "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys(config.QuitKeys...),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// actionBinding returns a binding for every key bound to a. An action with
// no keys yields a disabled binding, which the help view hides.
func actionBinding(bind *core.KeyBind, a core.Action, desc string) key.Binding {
	keys := bind.Keys(a)
	if len(keys) == 0 {
		b := key.NewBinding(key.WithHelp("", desc))
		b.SetEnabled(false)
		return b
	}

	// Bubble Tea reports space as " ".
	teaKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == "space" {
			teaKeys[i] = " "
		} else {
			teaKeys[i] = k
		}
	}
	return key.NewBinding(
		key.WithKeys(teaKeys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}
