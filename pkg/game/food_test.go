package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sp := NewSpawner(40, 20, rng)
	s := NewSnake(Point{X: 20, Y: 10}, DirRight)

	for i := 0; i < 200; i++ {
		pos, err := sp.Spawn(s.body, 3, 1000)
		if err != nil {
			t.Fatalf("spawn %d failed on a nearly empty board: %v", i, err)
		}
		if s.Occupies(pos) {
			t.Fatalf("spawn %d placed food on the snake at %v", i, pos)
		}
		if pos.X <= 0 || pos.X >= 39 || pos.Y <= 0 || pos.Y >= 19 {
			t.Fatalf("spawn %d placed food on the border ring at %v", i, pos)
		}
	}
}

func TestSpawnPrefersDistanceFromHead(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sp := NewSpawner(40, 20, rng)
	s := NewSnake(Point{X: 20, Y: 10}, DirRight)

	for i := 0; i < 100; i++ {
		pos, err := sp.Spawn(s.body, 3, 1000)
		if err != nil {
			t.Fatalf("spawn failed: %v", err)
		}
		if d := pos.Manhattan(s.Head()); d < 3 {
			t.Fatalf("spawn %d: board is nearly empty, distance %d should satisfy the threshold", i, d)
		}
	}
}

func TestSpawnFallsBackToBestCandidate(t *testing.T) {
	// 5x5 board, 3x3 interior. Everything occupied except (2,1), one
	// cell above the head; the threshold can't be met, the free cell
	// must be returned anyway.
	rng := rand.New(rand.NewSource(7))
	sp := NewSpawner(5, 5, rng)

	body := NewBody(
		Point{X: 2, Y: 2},
		Point{X: 1, Y: 1}, Point{X: 3, Y: 1},
		Point{X: 1, Y: 2}, Point{X: 3, Y: 2},
		Point{X: 1, Y: 3}, Point{X: 2, Y: 3}, Point{X: 3, Y: 3},
	)

	pos, err := sp.Spawn(body, 3, 1000)
	if err != nil {
		t.Fatalf("spawn failed with a free cell available: %v", err)
	}
	if pos != (Point{X: 2, Y: 1}) {
		t.Errorf("expected the only free cell (2,1), got %v", pos)
	}
}

func TestSpawnBoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sp := NewSpawner(5, 5, rng)

	// All 9 interior cells occupied
	segs := make([]Point, 0, 9)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			segs = append(segs, Point{X: x, Y: y})
		}
	}
	body := NewBody(segs...)

	_, err := sp.Spawn(body, 3, 1000)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	s := NewSnake(Point{X: 20, Y: 10}, DirRight)

	a, err := NewSpawner(40, 20, rand.New(rand.NewSource(99))).Spawn(s.body, 3, 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSpawner(40, 20, rand.New(rand.NewSource(99))).Spawn(s.body, 3, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed should give same placement: %v vs %v", a, b)
	}
}
