package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or logical pixels for the window)
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the front end (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the nominal time between two frames.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Distance travelled in the current run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended with the boss defeated
	Deaths   int  // Number of deaths so far
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// MenuItem is a single entry of an on-screen menu.
type MenuItem struct {
	Label    string
	Selected bool
}

// HUD is the presentation state the game exposes to front ends.
// Front ends draw it over the world with their own widgets.
type HUD struct {
	// Banner is the caption shown above the progress bar (empty hides the bar).
	Banner string
	// Progress is the progress bar fill in [0, 1].
	Progress float64
	// Speaker and Dialogue describe the open dialogue box, if any.
	Speaker  string
	Dialogue string
	// Menu holds the home menu entries while the home screen is shown.
	Title string
	Menu  []MenuItem
}

// DialogueOpen reports whether a dialogue box is waiting for the viewer.
func (h HUD) DialogueOpen() bool {
	return h.Dialogue != ""
}
