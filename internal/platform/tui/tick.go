// Package tui hosts midway in a terminal through Bubble Tea.
// It owns the tick clock, key mapping, score saving and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop names the model
// whose tick chain produced it; a model ignores ticks of other chains.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick chain id.
func newTickLoop() uint64 { return tickLoops.Add(1) }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
