// Replay renders a recorded session back in the terminal at a fixed
// rate. Usage: replay <records/session_xxx.jsonl>
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <session.jsonl>\n", os.Args[0])
		os.Exit(1)
	}

	if err := replay(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func replay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open record file: %w", err)
	}
	defer f.Close()

	fmt.Print("\033[?25l")
	defer fmt.Print("\033[?25h")

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var snap game.Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			fmt.Fprintf(os.Stderr, "skipping bad record: %v\n", err)
			continue
		}

		fmt.Print("\033[H\033[2J\033[3J")
		fmt.Print(frame(snap))
		time.Sleep(time.Duration(snap.IntervalMs) * time.Millisecond)
	}
	return scanner.Err()
}

// frame rebuilds one board frame from a snapshot. Kept separate from the
// live renderer: replay draws from recorded positions, not from a Game.
func frame(snap game.Snapshot) string {
	board := make([][]rune, config.BoardHeight)
	for y := range board {
		board[y] = make([]rune, config.BoardWidth)
		for x := range board[y] {
			board[y][x] = config.CharEmpty
		}
	}

	for x := 0; x < config.BoardWidth; x++ {
		board[0][x] = config.CharWallH
		board[config.BoardHeight-1][x] = config.CharWallH
	}
	for y := 0; y < config.BoardHeight; y++ {
		board[y][0] = config.CharWallV
		board[y][config.BoardWidth-1] = config.CharWallV
	}

	set := func(p game.Point, ch rune) {
		if p.X < 0 || p.X >= config.BoardWidth || p.Y < 0 || p.Y >= config.BoardHeight {
			return
		}
		board[p.Y][p.X] = ch
	}

	set(snap.Food, config.CharFood)
	for i, p := range snap.Body {
		if i == 0 {
			set(p, config.CharHead)
		} else {
			set(p, config.CharBody)
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(" [replay] tick %d  score %d  %s\n", snap.Tick, snap.Score, snap.State))
	for _, row := range board {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
