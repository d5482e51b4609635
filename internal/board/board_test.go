package board

import "testing"

func TestContains(t *testing.T) {
	b := New(10, 5)

	tests := []struct {
		point Point
		want  bool
	}{
		{Point{0, 0}, true},
		{Point{9, 4}, true},
		{Point{5, 2}, true},
		{Point{-1, 2}, false},
		{Point{10, 2}, false},
		{Point{5, -1}, false},
		{Point{5, 5}, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.point); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	b := New(20, 10)
	center := b.Center()
	if center.X != 10 || center.Y != 5 {
		t.Errorf("Center() = %v, want (10,5)", center)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestDirectionIsOpposite(t *testing.T) {
	opposites := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}

	for d, opp := range opposites {
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) = false, want true", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(%v) = true, want false", d, d)
		}
		for other := Up; other <= Right; other++ {
			if other != opp && d.IsOpposite(other) {
				t.Errorf("%v.IsOpposite(%v) = true, want false", d, other)
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}
