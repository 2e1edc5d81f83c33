// Package tui provides the Bubble Tea integration for the garden.
// It handles the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after the
// frame interval. Exactly one tick is ever in flight: the next is scheduled
// only when the current one is handled, so suspending the loop is as simple
// as not rescheduling, and quitting leaves no orphaned timers.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
