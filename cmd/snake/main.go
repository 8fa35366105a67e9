package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
	"github.com/trytobebee/snake_term/pkg/input"
	"github.com/trytobebee/snake_term/pkg/renderer"
	"github.com/trytobebee/snake_term/pkg/score"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	logger := newLogger()
	logger.Printf("snake started")

	// Fail fast if the terminal can't fit the board, before any game
	// state exists.
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("cannot determine terminal size: %w", err)
	}
	if w < config.MinTerminalWidth || h < config.MinTerminalHeight {
		return fmt.Errorf("terminal too small: need at least %dx%d, got %dx%d",
			config.MinTerminalWidth, config.MinTerminalHeight, w, h)
	}
	logger.Printf("terminal size: %dx%d", w, h)

	// High scores are nice to have; a broken database only costs us the
	// leaderboard, never the game.
	var gameStore game.Store
	store, err := score.Open(config.HighScoreFile, logger)
	if err != nil {
		logger.Printf("high score store unavailable, continuing without: %v", err)
	} else {
		gameStore = store
		defer store.Close()
	}

	recorder, err := game.NewRecorder(config.RecordDir, logger)
	if err != nil {
		logger.Printf("session recording unavailable, continuing without: %v", err)
		recorder = nil
	} else {
		defer recorder.Close()
	}

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("cannot open keyboard: %w", err)
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(config.BoardWidth, config.BoardHeight, logger)
	render.HideCursor()
	defer render.ShowCursor()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g, err := game.New(config.BoardWidth, config.BoardHeight, rng, gameStore, logger)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// The tick timer doubles as the input poll timeout: input arriving
	// before the deadline is applied without advancing the simulation,
	// and the timer firing runs exactly one tick.
	timer := time.NewTimer(g.TickInterval())
	defer timer.Stop()

	render.Render(g)

	for {
		select {
		case ev := <-inputHandler.Events():
			switch ev {
			case input.EventQuit:
				logger.Printf("quit requested, final score %d", g.Score())
				return nil
			case input.EventPause:
				g.TogglePause()
				render.Render(g)
			case input.EventRestart:
				if g.State() != game.StateGameOver {
					continue
				}
				if err := g.Restart(); err != nil {
					return fmt.Errorf("cannot restart game: %w", err)
				}
				resetTimer(timer, g.TickInterval())
				render.Render(g)
			default:
				if dir, ok := input.Direction(ev); ok {
					g.SetDirection(dir)
				}
			}

		case <-sigChan:
			logger.Printf("interrupted, final score %d, state %s", g.Score(), g.State())
			return nil

		case <-timer.C:
			g.Tick()
			if recorder != nil {
				recorder.Record(g.Snapshot())
			}
			render.Render(g)
			timer.Reset(g.TickInterval())
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// newLogger opens the run log, falling back to stderr if the file can't
// be created. The handle is passed down explicitly; nothing logs through
// package globals.
func newLogger() *log.Logger {
	f, err := os.Create(config.LogFile)
	if err != nil {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(f, "", log.LstdFlags)
}
