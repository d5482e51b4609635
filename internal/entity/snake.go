// Package entity provides the snake body model.
package entity

import (
	"github.com/samdwyer/gridsnake/internal/board"
)

// Snake is an ordered double-ended sequence of cells: index 0 is the head,
// the last index is the tail. A live snake always has at least one segment,
// and no two segments overlap.
type Snake struct {
	segments []board.Point
}

// NewSnake creates a snake of the given length with the head at the given
// position and the body extending leftward, matching an initial heading of
// Right.
func NewSnake(head board.Point, length int) *Snake {
	segments := make([]board.Point, 0, length)
	for i := 0; i < length; i++ {
		segments = append(segments, board.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{segments: segments}
}

// Head returns the front segment. Calling Head on an empty snake is a
// programming error and panics.
func (s *Snake) Head() board.Point {
	if len(s.segments) == 0 {
		panic("entity: head of empty snake")
	}
	return s.segments[0]
}

// Tail returns the back segment. Panics on an empty snake.
func (s *Snake) Tail() board.Point {
	if len(s.segments) == 0 {
		panic("entity: tail of empty snake")
	}
	return s.segments[len(s.segments)-1]
}

// NextHead computes where the head would land after one step in the given
// direction. It does not mutate the snake.
func (s *Snake) NextHead(dir board.Direction) board.Point {
	dx, dy := dir.Delta()
	return s.Head().Add(dx, dy)
}

// PushFront inserts a new head segment.
func (s *Snake) PushFront(p board.Point) {
	s.segments = append(s.segments, board.Point{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = p
}

// PopBack removes the tail segment. Every call must correspond to an
// existing segment; popping an empty snake panics.
func (s *Snake) PopBack() {
	if len(s.segments) == 0 {
		panic("entity: pop from empty snake")
	}
	s.segments = s.segments[:len(s.segments)-1]
}

// Contains reports whether any segment occupies the given point.
func (s *Snake) Contains(p board.Point) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// ContainsExceptTail reports whether any segment other than the tail
// occupies the given point. Used for the self-collision check on ticks
// where the tail cell is vacated by the same move.
func (s *Snake) ContainsExceptTail(p board.Point) bool {
	for _, seg := range s.segments[:len(s.segments)-1] {
		if seg == p {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns the body cells from head to tail. The returned slice is
// a copy; callers may not mutate the snake through it.
func (s *Snake) Segments() []board.Point {
	out := make([]board.Point, len(s.segments))
	copy(out, s.segments)
	return out
}
