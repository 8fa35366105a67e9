package renderer

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
)

// TerminalRenderer draws the game to the terminal with ANSI escape
// codes. A cell board and a frame buffer are pre-allocated once to keep
// per-frame allocations down.
type TerminalRenderer struct {
	width  int
	height int
	board  [][]rune
	buffer strings.Builder
	logger *log.Logger
}

// NewTerminalRenderer creates a renderer for a board of the given outer
// dimensions.
func NewTerminalRenderer(width, height int, logger *log.Logger) *TerminalRenderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	board := make([][]rune, height)
	for i := range board {
		board[i] = make([]rune, width)
	}
	return &TerminalRenderer{
		width:  width,
		height: height,
		board:  board,
		logger: logger,
	}
}

// clearScreen clears the terminal using ANSI escape codes.
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit).
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start).
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render draws the current game state to the terminal. Drawing problems
// are logged and skipped; a frame must never take the tick loop down.
func (r *TerminalRenderer) Render(g *game.Game) {
	r.clearScreen()
	fmt.Print(r.Frame(g))
}

// Frame builds one frame as a string. Split from Render so the layout
// is testable without a terminal.
func (r *TerminalRenderer) Frame(g *game.Game) string {
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = config.CharEmpty
		}
	}

	r.drawWalls()
	r.setCell(g.Food(), config.CharFood)

	for i, p := range g.SnakeBody() {
		if i == 0 {
			r.setCell(p, config.CharHead)
		} else {
			r.setCell(p, config.CharBody)
		}
	}

	if crash, ok := g.CrashPoint(); ok {
		r.setCell(crash, config.CharCrash)
	}

	switch g.State() {
	case game.StatePaused:
		r.overlay([]string{"PAUSED", "", "Press P to continue"})
	case game.StateGameOver:
		r.overlay(r.gameOverLines(g))
	}

	// Status line above the board
	r.buffer.WriteString(fmt.Sprintf(" Score: %d  High: %d  Speed: %dms\n",
		g.Score(), g.HighScore(), g.TickInterval().Milliseconds()))

	for _, row := range r.board {
		r.buffer.WriteString(string(row))
		r.buffer.WriteByte('\n')
	}

	r.buffer.WriteString(" Arrows/WASD move, P pause, Q quit\n")

	return r.buffer.String()
}

// setCell writes a glyph into the board, logging and skipping anything
// off-grid instead of panicking.
func (r *TerminalRenderer) setCell(p game.Point, ch rune) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		r.logger.Printf("skipped drawing %q at off-grid cell %d,%d", ch, p.X, p.Y)
		return
	}
	r.board[p.Y][p.X] = ch
}

func (r *TerminalRenderer) drawWalls() {
	for x := 0; x < r.width; x++ {
		r.board[0][x] = config.CharWallH
		r.board[r.height-1][x] = config.CharWallH
	}
	for y := 0; y < r.height; y++ {
		r.board[y][0] = config.CharWallV
		r.board[y][r.width-1] = config.CharWallV
	}
	r.board[0][0] = config.CharWallC
	r.board[0][r.width-1] = config.CharWallC
	r.board[r.height-1][0] = config.CharWallC
	r.board[r.height-1][r.width-1] = config.CharWallC
}

// overlay writes centered text lines onto the board.
func (r *TerminalRenderer) overlay(lines []string) {
	startY := (r.height - len(lines)) / 2
	for i, line := range lines {
		y := startY + i
		if y <= 0 || y >= r.height-1 {
			continue
		}
		startX := (r.width - len(line)) / 2
		for j, ch := range line {
			x := startX + j
			if x <= 0 || x >= r.width-1 {
				continue
			}
			r.board[y][x] = ch
		}
	}
}

func (r *TerminalRenderer) gameOverLines(g *game.Game) []string {
	title := "GAME OVER!"
	if g.Won() {
		title = "YOU WIN!"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Final Score: %d", g.Score()),
		fmt.Sprintf("High Score: %d", g.HighScore()),
	}
	if g.NewHighScore() {
		lines = append(lines, "", "NEW HIGH SCORE!")
	}
	lines = append(lines,
		"",
		"Press 'R' to Restart",
		"Press 'Q' to Quit",
	)
	return lines
}
