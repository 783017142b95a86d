// Package tui provides the Bubble Tea front end for Connect Four.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fallInterval = 40 * time.Millisecond // one board row per tick
	goodbyeDelay = 3 * time.Second
)

// fallTickMsg advances the falling-disc animation by one row.
type fallTickMsg time.Time

// goodbyeMsg ends the program after the farewell screen.
type goodbyeMsg struct{}

// fallTickCmd schedules the next animation step.
func fallTickCmd() tea.Cmd {
	return tea.Tick(fallInterval, func(t time.Time) tea.Msg {
		return fallTickMsg(t)
	})
}

// goodbyeCmd fires once the farewell screen has been shown long enough.
func goodbyeCmd() tea.Cmd {
	return tea.Tick(goodbyeDelay, func(time.Time) tea.Msg {
		return goodbyeMsg{}
	})
}
