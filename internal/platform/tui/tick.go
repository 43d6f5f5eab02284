// Package tui provides the Bubble Tea front end for Borker Run.
// It handles the terminal UI loop, input mapping, and HUD drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of one tick after a stall.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time elapsed since last, capped to maxFrameDelta.
// The first tick uses the nominal frame duration.
func frameDelta(last, now time.Time, nominal time.Duration) time.Duration {
	if last.IsZero() {
		return nominal
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		return maxFrameDelta
	}
	return d
}
