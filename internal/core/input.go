package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - nudge ship left
	ActionRight          // D, L, Right arrow - nudge ship right
	ActionFire           // Space, W, Up, mouse tap - shoot
	ActionConfirm        // Enter - start game from menu
	ActionRestart        // R - play again after game over
	ActionMenu           // M, B - back to menu after game over
	ActionPause          // P, Escape - leave a running game
	ActionQuit           // Q, Ctrl+C - exit program/session
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input gathered between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// DragX is the accumulated horizontal drag distance in world units.
	DragX float64
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

// Drag accumulates a horizontal drag delta.
func (f *InputFrame) Drag(dx float64) {
	f.DragX += dx
}

// Empty reports whether nothing was recorded this frame.
func (f InputFrame) Empty() bool {
	if f.DragX != 0 {
		return false
	}
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.DragX = 0
}
