package session

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/board"
	"github.com/samdwyer/gridsnake/internal/entity"
)

// spawnFood picks a uniformly random cell not occupied by the snake, by
// rejection sampling. Terminates with probability 1 while free cells exist;
// a snake covering the whole board is an unreachable win condition and is
// not handled.
func spawnFood(rng *rand.Rand, b board.Board, snake *entity.Snake) board.Point {
	for {
		p := board.Point{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
		if !snake.Contains(p) {
			return p
		}
	}
}
