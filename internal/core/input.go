package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends map keys and taps onto actions; the game reduces them further into
// player input once per frame.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - shift one lane to the left
	ActionRight          // D, Right arrow - shift one lane to the right
	ActionJump           // W, Up arrow, Space - jump
	ActionConfirm        // Enter, tap - dismiss dialogue, activate menu entry
	ActionUp             // Up arrow in menus
	ActionDown           // Down arrow in menus
	ActionBack           // Escape - leave the current overlay
	ActionRestart        // R key - restart after the game ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// TouchPhase distinguishes the start and the end of a touch or mouse drag.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchEnd
)

// Touch is a single pointer event in screen pixels (or cells in the terminal).
type Touch struct {
	Phase TouchPhase
	X, Y  float64
}

// InputFrame represents everything the viewer did since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Touches lists pointer events in arrival order.
	Touches []Touch
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddTouch appends a pointer event.
func (f *InputFrame) AddTouch(phase TouchPhase, x, y float64) {
	f.Touches = append(f.Touches, Touch{Phase: phase, X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Touches) == 0
}

// Clear resets all actions and touches for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Touches = f.Touches[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Touches = append(clone.Touches, f.Touches...)
	return clone
}
