package session

import (
	"github.com/samdwyer/gridsnake/internal/board"
)

// Snapshot is a read-only view of the session handed to the renderer each
// tick. The renderer must not mutate game state; the snake slice is a copy.
type Snapshot struct {
	Board   board.Board
	Snake   []board.Point // head first
	Food    board.Point
	Score   int
	Phase   Phase
	Cause   Cause
	OffsetX int
	OffsetY int
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.board,
		Snake:   s.snake.Segments(),
		Food:    s.food,
		Score:   s.score,
		Phase:   s.phase,
		Cause:   s.cause,
		OffsetX: s.offsetX,
		OffsetY: s.offsetY,
	}
}
