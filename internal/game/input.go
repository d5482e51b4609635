package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/board"
)

// Action is a semantic input action decoded from a raw key event.
type Action int

const (
	// ActionNone means the key is not bound to anything.
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPauseToggle
	ActionRestart
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPauseToggle:
		return "pause_toggle"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the movement direction for a directional action.
func (a Action) Direction() (board.Direction, bool) {
	switch a {
	case ActionUp:
		return board.Up, true
	case ActionDown:
		return board.Down, true
	case ActionLeft:
		return board.Left, true
	case ActionRight:
		return board.Right, true
	default:
		return 0, false
	}
}

// ActionForKey maps a raw key event to a semantic action. Pure function,
// testable without a terminal.
func ActionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return ActionPauseToggle
		case 'r', 'R':
			return ActionRestart
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
