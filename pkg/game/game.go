package game

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/trytobebee/snake_term/pkg/config"
)

// Store persists the high score across runs. Implementations must not
// be required for the game to run; a nil Store means scores are kept
// for the session only.
type Store interface {
	Load() int
	Save(score int) error
}

// Game is the controller for one round: it owns the snake, the food and
// the score/difficulty state, and advances the simulation one tick at a
// time. It is single-threaded; the caller drives Tick from its loop.
type Game struct {
	Width  int
	Height int

	snake   *Snake
	food    Point
	spawner *Spawner

	// Direction input is buffered and applied at the start of the next
	// tick, so input while paused is accepted but has no effect until
	// the game resumes.
	pendingDir Direction
	hasPending bool

	state State
	won   bool

	score        int
	foodsEaten   int
	tickInterval time.Duration
	tick         uint64

	highScore    int
	newHighScore bool

	crash    Point
	hasCrash bool

	store  Store
	logger *log.Logger
}

// New creates a game on a board of the given outer dimensions. The rand
// source seeds food placement; store and logger may be nil.
func New(width, height int, rng *rand.Rand, store Store, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Game{
		Width:   width,
		Height:  height,
		spawner: NewSpawner(width, height, rng),
		store:   store,
		logger:  logger,
	}
	if store != nil {
		g.highScore = store.Load()
		logger.Printf("loaded high score: %d", g.highScore)
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	logger.Printf("game created: board %dx%d, tick interval %v", width, height, g.tickInterval)
	return g, nil
}

func (g *Game) reset() error {
	g.snake = NewSnake(Point{X: config.InitialHeadX, Y: config.InitialHeadY}, DirRight)
	pos, err := g.spawner.Spawn(g.snake.body, config.MinFoodHeadDistance, config.MaxSpawnAttempts)
	if err != nil {
		return err
	}
	g.food = pos
	g.score = 0
	g.foodsEaten = 0
	g.tickInterval = config.InitialTickInterval
	g.tick = 0
	g.state = StateRunning
	g.won = false
	g.newHighScore = false
	g.hasCrash = false
	g.hasPending = false
	return nil
}

// Restart begins a fresh round: new snake, new food, score and
// difficulty back to initial. The loaded high score is kept.
func (g *Game) Restart() error {
	if err := g.reset(); err != nil {
		return err
	}
	g.logger.Printf("game restarted")
	return nil
}

// SetDirection buffers a direction change for the next tick. Ignored
// once the round is over.
func (g *Game) SetDirection(d Direction) {
	if g.state == StateGameOver {
		return
	}
	g.pendingDir = d
	g.hasPending = true
}

// TogglePause switches between Running and Paused. No-op once the round
// is over.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		g.logger.Printf("game paused")
	case StatePaused:
		g.state = StateRunning
		g.logger.Printf("game resumed")
	}
}

// Tick advances the simulation by one step: apply buffered input, move
// the snake, resolve food consumption and difficulty, then check
// collisions. Does nothing unless the game is Running.
func (g *Game) Tick() {
	if g.state != StateRunning {
		return
	}
	g.tick++

	if g.hasPending {
		g.snake.ChangeDirection(g.pendingDir)
		g.hasPending = false
	}

	newHead := g.snake.Move()

	if newHead == g.food {
		g.score++
		g.foodsEaten++
		g.snake.Grow()
		g.logger.Printf("food eaten at %d,%d: score=%d", newHead.X, newHead.Y, g.score)

		pos, err := g.spawner.Spawn(g.snake.body, config.MinFoodHeadDistance, config.MaxSpawnAttempts)
		if err != nil {
			// Board is packed solid, nothing left to eat. That's a win,
			// not an error.
			g.logger.Printf("board full after %d foods: player wins", g.foodsEaten)
			g.won = true
			g.enterGameOver()
			return
		}
		g.food = pos

		if g.foodsEaten%config.DifficultyThreshold == 0 {
			g.increaseDifficulty()
		}
	}

	if g.wallCollision(newHead) || g.snake.SelfCollision() {
		g.crash = newHead
		g.hasCrash = true
		g.logger.Printf("collision at %d,%d (wall=%t): score=%d, length=%d",
			newHead.X, newHead.Y, g.wallCollision(newHead), g.score, g.snake.Len())
		g.enterGameOver()
	}
}

func (g *Game) wallCollision(p Point) bool {
	return p.X <= 0 || p.X >= g.Width-1 || p.Y <= 0 || p.Y >= g.Height-1
}

func (g *Game) increaseDifficulty() {
	if g.tickInterval <= config.MinTickInterval {
		return
	}
	g.tickInterval -= config.SpeedStep
	if g.tickInterval < config.MinTickInterval {
		g.tickInterval = config.MinTickInterval
	}
	g.logger.Printf("difficulty increased: tick interval now %v", g.tickInterval)
}

func (g *Game) enterGameOver() {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHighScore = true
		if g.store != nil {
			if err := g.store.Save(g.score); err != nil {
				g.logger.Printf("failed to save high score: %v", err)
			} else {
				g.logger.Printf("saved new high score: %d", g.score)
			}
		}
	}
	g.logger.Printf("round over: score=%d, high=%d, won=%t", g.score, g.highScore, g.won)
}

// State returns the controller state.
func (g *Game) State() State { return g.state }

// Won reports whether the round ended by filling the board.
func (g *Game) Won() bool { return g.won }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best known score, including this round's.
func (g *Game) HighScore() int { return g.highScore }

// NewHighScore reports whether this round set a new high score.
func (g *Game) NewHighScore() bool { return g.newHighScore }

// FoodsEaten returns the number of foods eaten this round.
func (g *Game) FoodsEaten() int { return g.foodsEaten }

// TickInterval returns the current simulation step interval. The caller
// uses it as the input poll timeout, so it is also the frame clock.
func (g *Game) TickInterval() time.Duration { return g.tickInterval }

// Food returns the current food position.
func (g *Game) Food() Point { return g.food }

// SnakeBody returns a head-first copy of the snake segments.
func (g *Game) SnakeBody() []Point { return g.snake.Body() }

// CrashPoint returns where the snake crashed, if it did.
func (g *Game) CrashPoint() (Point, bool) { return g.crash, g.hasCrash }

// Snapshot captures the visible game state for recording and replay.
type Snapshot struct {
	Tick       uint64  `json:"tick"`
	State      string  `json:"state"`
	Score      int     `json:"score"`
	HighScore  int     `json:"highScore"`
	FoodsEaten int     `json:"foodsEaten"`
	IntervalMs int64   `json:"intervalMs"`
	Food       Point   `json:"food"`
	Body       []Point `json:"body"`
	Won        bool    `json:"won,omitempty"`
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		State:      g.state.String(),
		Score:      g.score,
		HighScore:  g.highScore,
		FoodsEaten: g.foodsEaten,
		IntervalMs: g.tickInterval.Milliseconds(),
		Food:       g.food,
		Body:       g.snake.Body(),
		Won:        g.won,
	}
}
