package engine

import (
	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// HeadlessWindow renders into an in-memory screen and replays scripted events.
// Used by the simulate command and by tests.
type HeadlessWindow struct {
	screen  *core.Screen
	pending []core.Event
	frame   string
	shown   int
}

// NewHeadlessWindow creates a headless window of the given size in cells.
func NewHeadlessWindow(width, height int) *HeadlessWindow {
	return &HeadlessWindow{screen: core.NewScreen(width, height)}
}

// Push schedules an event for the next PollEvents call.
func (h *HeadlessWindow) Push(ev core.Event) {
	h.pending = append(h.pending, ev)
}

// Press schedules a key press.
func (h *HeadlessWindow) Press(key string) {
	h.Push(core.Event{Kind: core.KeyPressed, Key: key})
}

// Release schedules a key release.
func (h *HeadlessWindow) Release(key string) {
	h.Push(core.Event{Kind: core.KeyReleased, Key: key})
}

// Close schedules a window close notification.
func (h *HeadlessWindow) Close() {
	h.Push(core.Event{Kind: core.WindowClosed})
}

// PollEvents hands over every scheduled event.
func (h *HeadlessWindow) PollEvents(q *core.EventQueue) {
	for _, ev := range h.pending {
		q.Push(ev)
	}
	h.pending = nil
}

// Size returns the screen dimensions.
func (h *HeadlessWindow) Size() (int, int) {
	return h.screen.Width(), h.screen.Height()
}

// Clear blanks the back buffer.
func (h *HeadlessWindow) Clear() {
	h.screen.Clear()
}

// Draw renders d into the back buffer.
func (h *HeadlessWindow) Draw(d shape.Drawable) {
	d.Draw(h.screen)
}

// Display snapshots the back buffer as the presented frame.
func (h *HeadlessWindow) Display() {
	h.frame = h.screen.String()
	h.shown++
}

// Frame returns the last presented frame as plain text.
func (h *HeadlessWindow) Frame() string {
	return h.frame
}

// Displayed returns how many frames were presented.
func (h *HeadlessWindow) Displayed() int {
	return h.shown
}

// Screen exposes the back buffer, including cell colors.
func (h *HeadlessWindow) Screen() *core.Screen {
	return h.screen
}
