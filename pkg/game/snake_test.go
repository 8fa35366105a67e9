package game

import "testing"

func TestNewSnakeInitialShape(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, DirRight)

	want := []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if s.Direction() != DirRight {
		t.Errorf("expected initial direction right, got %v", s.Direction())
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, DirRight)

	for i := 0; i < 10; i++ {
		before := s.Len()
		newHead := s.Move()
		if s.Len() != before {
			t.Fatalf("move %d: length changed from %d to %d without growth", i, before, s.Len())
		}
		if newHead != s.Head() {
			t.Fatalf("move %d: returned head %v does not match Head() %v", i, newHead, s.Head())
		}
	}
}

func TestGrowAddsExactlyOneSegment(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, DirRight)
	before := s.Len()

	s.Grow()
	s.Move()
	if s.Len() != before+1 {
		t.Errorf("expected length %d after grow+move, got %d", before+1, s.Len())
	}

	// Growth must not stack
	s.Grow()
	s.Grow()
	s.Move()
	if s.Len() != before+2 {
		t.Errorf("double grow before one move should add one segment: expected %d, got %d", before+2, s.Len())
	}

	// Flag consumed: the next move is plain
	s.Move()
	if s.Len() != before+2 {
		t.Errorf("expected length %d after plain move, got %d", before+2, s.Len())
	}
}

func TestChangeDirectionRejectsOpposite(t *testing.T) {
	opposites := []struct {
		name    string
		current Direction
		request Direction
	}{
		{"up-down", DirUp, DirDown},
		{"down-up", DirDown, DirUp},
		{"left-right", DirLeft, DirRight},
		{"right-left", DirRight, DirLeft},
	}

	for _, tc := range opposites {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(Point{X: 10, Y: 10}, tc.current)
			if s.ChangeDirection(tc.request) {
				t.Error("reversal request should report no change")
			}
			if s.Direction() != tc.current {
				t.Errorf("direction changed to %v on reversal request", s.Direction())
			}
		})
	}
}

func TestChangeDirectionAcceptsTurns(t *testing.T) {
	s := NewSnake(Point{X: 10, Y: 10}, DirRight)
	if !s.ChangeDirection(DirUp) {
		t.Error("perpendicular turn should be accepted")
	}
	if s.Direction() != DirUp {
		t.Errorf("expected direction up, got %v", s.Direction())
	}
}

func TestSelfCollisionDetection(t *testing.T) {
	// Head duplicated at index 3
	s := &Snake{
		body: NewBody(
			Point{X: 5, Y: 6}, Point{X: 5, Y: 5}, Point{X: 4, Y: 5},
			Point{X: 5, Y: 6}, Point{X: 6, Y: 6},
		),
		direction: DirDown,
	}
	if !s.SelfCollision() {
		t.Error("head appearing at index >= 1 must report collision")
	}

	clean := NewSnake(Point{X: 5, Y: 5}, DirRight)
	if clean.SelfCollision() {
		t.Error("snake without duplicates must not report collision")
	}
}

func TestMoveIntoVacatedTailIsLegal(t *testing.T) {
	// 2x2 ring: the head moves into the cell the tail leaves this move.
	s := &Snake{
		body: NewBody(
			Point{X: 2, Y: 2}, Point{X: 3, Y: 2},
			Point{X: 3, Y: 3}, Point{X: 2, Y: 3},
		),
		direction: DirDown,
	}

	s.Move()
	if s.SelfCollision() {
		t.Error("moving into the just-vacated tail cell is not a collision")
	}
	if s.Head() != (Point{X: 2, Y: 3}) {
		t.Errorf("expected head (2,3), got %v", s.Head())
	}
	if s.Len() != 4 {
		t.Errorf("expected length 4, got %d", s.Len())
	}
}
