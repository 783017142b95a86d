package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game view to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move the column selector left
	ActionRight          // Right arrow, l - move the column selector right
	ActionDrop           // Enter, Space, Down - drop into the selected column
	ActionRestart        // R - start a new game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionHelp           // ? - toggle the full help view
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
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
