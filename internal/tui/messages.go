package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dialogTickInterval is the cadence of the toast auto-dismiss countdown.
// The countdown logic itself is cadence-independent: each tick carries the
// interval in milliseconds.
const dialogTickInterval = 100 * time.Millisecond

// DialogTickMsg drives the toast dismiss countdown.
type DialogTickMsg time.Time

func dialogTick() tea.Cmd {
	return tea.Every(
		dialogTickInterval,
		func(t time.Time) tea.Msg {
			return DialogTickMsg(t)
		},
	)
}
