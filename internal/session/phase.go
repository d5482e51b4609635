// Package session provides the snake game state machine: one Session owns
// all mutable game data for a play session and advances it one tick at a
// time.
package session

// Phase represents the lifecycle state of a session.
type Phase int

const (
	// PhaseWaitingForStart is the initial state: the snake does not move
	// until the first directional input arrives.
	PhaseWaitingForStart Phase = iota
	// PhaseRunning is active gameplay; Advance moves the snake each tick.
	PhaseRunning
	// PhasePaused suspends gameplay; Advance is a no-op until unpaused.
	PhasePaused
	// PhaseGameOver is terminal for the current round; only restart or quit
	// leave it.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingForStart:
		return "waiting_for_start"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause identifies what ended a round. A game over is a normal outcome
// reported through the phase, not an error.
type Cause int

const (
	// CauseNone means the session is not in PhaseGameOver.
	CauseNone Cause = iota
	// CauseWallCollision means the head left the board.
	CauseWallCollision
	// CauseSelfCollision means the head ran into the snake's own body.
	CauseSelfCollision
)

// String returns a human-readable cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWallCollision:
		return "wall_collision"
	case CauseSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}
