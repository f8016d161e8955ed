// Package tui provides the Bubble Tea integration for the key loop demo.
// It adapts the terminal to the engine's window collaborator and drives the
// loop from tick messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick keeps a zero poll interval from spinning the program.
const minTick = time.Millisecond

// TickMsg is sent to trigger one loop iteration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval < minTick {
		interval = minTick
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
