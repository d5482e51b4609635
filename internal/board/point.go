// Package board provides the playing-field coordinate space and bounds queries.
package board

// Point is a grid-relative coordinate. Validity is contextual: a Point is
// only meaningful inside some board's bounds.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given deltas.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
