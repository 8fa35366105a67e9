package game

import "github.com/trytobebee/snake_term/pkg/config"

// Snake owns the body geometry, the committed direction and the pending
// growth flag. Direction changes take effect on the next Move; growth
// takes effect on the next Move and does not stack.
type Snake struct {
	body        *Body
	direction   Direction
	growPending bool
}

// NewSnake creates a snake of the initial length with its head at start,
// facing dir, with the body trailing behind it.
func NewSnake(start Point, dir Direction) *Snake {
	segs := make([]Point, 0, config.InitialSnakeLength)
	back := dir.Opposite()
	p := start
	for i := 0; i < config.InitialSnakeLength; i++ {
		segs = append(segs, p)
		p = p.Step(back)
	}
	return &Snake{
		body:      NewBody(segs...),
		direction: dir,
	}
}

// Head returns the current head position.
func (s *Snake) Head() Point {
	return s.body.Head()
}

// Len returns the body length in segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Direction returns the committed direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Occupies reports whether any body segment is at p.
func (s *Snake) Occupies(p Point) bool {
	return s.body.Contains(p)
}

// Body returns a head-first copy of the segments for rendering.
func (s *Snake) Body() []Point {
	return s.body.Positions()
}

// ChangeDirection sets the direction unless the request would reverse
// the snake into its own body, in which case it is silently dropped.
// Reports whether the direction changed.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.direction.Opposite() || d == s.direction {
		return false
	}
	s.direction = d
	return true
}

// Move advances the snake one cell in its direction and returns the new
// head position. If growth is pending the tail stays in place and the
// flag is cleared; otherwise the tail is removed. This is the only
// mutator of body shape besides construction.
func (s *Snake) Move() Point {
	newHead := s.body.Head().Step(s.direction)
	s.body.PushHead(newHead)
	if s.growPending {
		s.growPending = false
	} else {
		s.body.PopTail()
	}
	return newHead
}

// Grow schedules one segment of growth for the next Move. Calling it
// again before the next Move has no further effect.
func (s *Snake) Grow() {
	s.growPending = true
}

// SelfCollision reports whether the head occupies the same cell as any
// other segment. Checked after Move commits.
func (s *Snake) SelfCollision() bool {
	return s.body.SelfOverlap()
}
