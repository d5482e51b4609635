package session

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/board"
	"github.com/samdwyer/gridsnake/internal/entity"
)

const (
	// InitialLength is the snake length at the start of every round.
	InitialLength = 3
	// FoodScore is the score awarded per food item eaten.
	FoodScore = 10
)

// Session owns all mutable game data for one play session: the snake, the
// food, the direction buffer, score and lifecycle phase. It is mutated only
// through its methods and only from the frame loop, never concurrently.
type Session struct {
	board board.Board
	snake *entity.Snake
	food  board.Point

	// dir is the committed direction in effect this tick; staged is the
	// buffered next direction, applied at the start of Advance. Requests
	// are filtered against dir, not staged, so two rapid key presses
	// cannot reverse the snake within a single tick.
	dir    board.Direction
	staged board.Direction

	score int
	phase Phase
	cause Cause
	ticks uint64

	// Render offsets for centering the field in the terminal. Carried
	// through restarts unchanged.
	offsetX int
	offsetY int

	rng *rand.Rand
}

// New creates a session on the given board with the given render offsets.
// The snake starts centered, body extending left of the head, so the
// implied initial heading is Right. The session begins in
// PhaseWaitingForStart and does not move until the first directional input.
func New(b board.Board, offsetX, offsetY int, rng *rand.Rand) *Session {
	s := &Session{
		board:   b,
		dir:     board.Right,
		staged:  board.Right,
		phase:   PhaseWaitingForStart,
		offsetX: offsetX,
		offsetY: offsetY,
		rng:     rng,
	}
	s.reset()
	return s
}

// reset re-creates the snake, food, score and phase for a fresh round.
// Board dimensions and render offsets are left untouched.
func (s *Session) reset() {
	s.snake = entity.NewSnake(s.board.Center(), InitialLength)
	s.food = spawnFood(s.rng, s.board, s.snake)
	s.dir = board.Right
	s.staged = board.Right
	s.score = 0
	s.cause = CauseNone
	s.ticks = 0
	s.phase = PhaseWaitingForStart
}

// RequestDirection stages a direction change for the next tick. Requests
// opposite to the committed direction are dropped. During
// PhaseWaitingForStart a valid request also sets the initial direction and
// starts the game; an opposite request still starts the game on the implied
// initial heading, matching the body layout. Ignored once the round is over.
func (s *Session) RequestDirection(d board.Direction) {
	if s.phase == PhaseGameOver {
		return
	}
	if !s.dir.IsOpposite(d) {
		s.staged = d
		if s.phase == PhaseWaitingForStart {
			s.dir = d
		}
	}
	if s.phase == PhaseWaitingForStart {
		s.phase = PhaseRunning
	}
}

// TogglePause switches between Running and Paused. It has no effect in any
// other phase.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	}
}

// Restart begins a new round after a game over: snake, food, score and
// phase are reset while board dimensions and offsets carry over. It has no
// effect unless the session is in PhaseGameOver.
func (s *Session) Restart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.reset()
}

// Advance executes one tick of game logic: commit the staged direction,
// move the head, resolve collisions, then either grow on food or shift
// forward. Outside PhaseRunning it does nothing.
func (s *Session) Advance() {
	if s.phase != PhaseRunning {
		return
	}

	s.dir = s.staged
	s.ticks++

	newHead := s.snake.NextHead(s.dir)

	if !s.board.Contains(newHead) {
		s.phase = PhaseGameOver
		s.cause = CauseWallCollision
		return
	}

	growing := newHead == s.food

	// The tail cell is vacated this tick unless the snake grows, so it is
	// excluded from the self-collision check on non-growing moves.
	var collides bool
	if growing {
		collides = s.snake.Contains(newHead)
	} else {
		collides = s.snake.ContainsExceptTail(newHead)
	}
	if collides {
		s.phase = PhaseGameOver
		s.cause = CauseSelfCollision
		return
	}

	s.snake.PushFront(newHead)
	if growing {
		s.score += FoodScore
		s.food = spawnFood(s.rng, s.board, s.snake)
	} else {
		s.snake.PopBack()
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of Advance calls executed while running.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
