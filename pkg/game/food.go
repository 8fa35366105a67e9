package game

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by Spawn when no free interior cell could be
// found within the attempt budget. The caller must treat this as a
// terminal state, not retry.
var ErrBoardFull = errors.New("no free cell left for food")

// Spawner places food on random free interior cells. The rand source is
// injected so placement is deterministic under test.
type Spawner struct {
	width  int
	height int
	rng    *rand.Rand
}

// NewSpawner creates a spawner for a board of the given outer
// dimensions. Cells on the border ring are never chosen.
func NewSpawner(width, height int, rng *rand.Rand) *Spawner {
	return &Spawner{width: width, height: height, rng: rng}
}

// Spawn samples random interior cells until it finds one that is off the
// body and at least minDistance (Manhattan) from the head, returning the
// first such cell. If maxAttempts samples never meet the distance
// threshold, the farthest off-body candidate seen is returned instead.
// If no off-body candidate was seen at all, the board is full and
// ErrBoardFull is returned.
func (sp *Spawner) Spawn(body *Body, minDistance, maxAttempts int) (Point, error) {
	head := body.Head()
	var best Point
	bestDistance := -1

	for attempts := 0; attempts < maxAttempts; attempts++ {
		pos := Point{
			X: sp.rng.Intn(sp.width-2) + 1,
			Y: sp.rng.Intn(sp.height-2) + 1,
		}

		if body.Contains(pos) {
			continue
		}

		distance := pos.Manhattan(head)
		if distance >= minDistance {
			return pos, nil
		}

		if distance > bestDistance {
			best = pos
			bestDistance = distance
		}
	}

	if bestDistance >= 0 {
		return best, nil
	}
	return Point{}, ErrBoardFull
}
