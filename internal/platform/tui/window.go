package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// Window is the terminal side of engine.Window. Terminals report key presses
// and auto-repeats but never releases, so a held key is released once it has
// gone quiet: repeatDelay after the press while no repeat has arrived yet,
// releaseAfter after the latest repeat.
type Window struct {
	screen       *core.Screen
	pending      []core.Event
	held         map[string]heldKey
	repeatDelay  time.Duration
	releaseAfter time.Duration
	now          func() time.Time
	palette      map[core.Color]lipgloss.Style
	frame        string
}

type heldKey struct {
	seen     time.Time // Last press or repeat
	repeated bool
}

// NewWindow creates a terminal window of the given size in cells.
// repeatDelay covers the terminal's wait before auto-repeat starts and
// should exceed releaseAfter.
func NewWindow(width, height int, repeatDelay, releaseAfter time.Duration) *Window {
	return &Window{
		screen:       core.NewScreen(width, height),
		held:         make(map[string]heldKey),
		repeatDelay:  max(repeatDelay, releaseAfter),
		releaseAfter: releaseAfter,
		now:          time.Now,
		palette:      colorStyles,
	}
}

// SetPalette changes the cell colors used by Display.
func (w *Window) SetPalette(p map[core.Color]lipgloss.Style) {
	w.palette = p
}

// KeyName converts a Bubble Tea key string to a binding key name.
func KeyName(s string) string {
	if s == " " {
		return "space"
	}
	return s
}

// KeyDown records a press or auto-repeat of key. Only the first press of a
// held key becomes a KeyPressed event.
func (w *Window) KeyDown(key string) {
	key = KeyName(key)
	_, repeat := w.held[key]
	if !repeat {
		w.pending = append(w.pending, core.Event{Kind: core.KeyPressed, Key: key})
	}
	w.held[key] = heldKey{seen: w.now(), repeated: repeat}
}

// Close queues a window close notification.
func (w *Window) Close() {
	w.pending = append(w.pending, core.Event{Kind: core.WindowClosed})
}

// Held returns the keys currently considered down, sorted.
func (w *Window) Held() []string {
	keys := make([]string, 0, len(w.held))
	for k := range w.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resize changes the drawable area.
func (w *Window) Resize(width, height int) {
	w.screen.Resize(max(0, width), max(0, height))
}

// PollEvents hands over queued events followed by releases for keys that
// timed out.
func (w *Window) PollEvents(q *core.EventQueue) {
	for _, ev := range w.pending {
		q.Push(ev)
	}
	w.pending = nil

	now := w.now()
	for _, key := range w.Held() {
		h := w.held[key]
		timeout := w.releaseAfter
		if !h.repeated {
			timeout = w.repeatDelay
		}
		if now.Sub(h.seen) >= timeout {
			delete(w.held, key)
			q.Push(core.Event{Kind: core.KeyReleased, Key: key})
		}
	}
}

// Size returns the screen dimensions.
func (w *Window) Size() (int, int) {
	return w.screen.Width(), w.screen.Height()
}

// Clear blanks the back buffer.
func (w *Window) Clear() {
	w.screen.Clear()
}

// Draw renders d into the back buffer.
func (w *Window) Draw(d shape.Drawable) {
	d.Draw(w.screen)
}

// Display renders the back buffer into the styled frame shown by View.
func (w *Window) Display() {
	w.frame = RenderScreenWith(w.screen, w.palette)
}

// Frame returns the last displayed frame.
func (w *Window) Frame() string {
	return w.frame
}

// Screen exposes the back buffer.
func (w *Window) Screen() *core.Screen {
	return w.screen
}
