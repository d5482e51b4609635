package board

// Board is the bounded playing field. Cells span [0,Width) x [0,Height).
type Board struct {
	Width  int
	Height int
}

// New creates a board with the given dimensions. Both must be positive.
func New(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Contains reports whether the point lies inside the field bounds.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// Center returns the center cell of the board.
func (b Board) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}
