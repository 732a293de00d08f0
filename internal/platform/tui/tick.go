// Package tui provides the Bubble Tea front end for Sokoban.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a tick rate into the delay between ticks,
// clamping the rate to the range the config allows.
func tickInterval(tickRate int) time.Duration {
	rate := core.Clamp(tickRate, config.MinTickRate, config.MaxTickRate)
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
