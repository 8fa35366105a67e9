package config

import "time"

// Game board dimensions. The playable area is the interior; the outer
// ring of cells is the wall.
const (
	BoardWidth  = 40
	BoardHeight = 20

	// Minimum terminal surface: board plus one status row above and below
	MinTerminalWidth  = 42
	MinTerminalHeight = 22
)

// Snake settings
const (
	InitialHeadX       = 5
	InitialHeadY       = 5
	InitialSnakeLength = 3
)

// Speed and difficulty settings
const (
	InitialTickInterval = 150 * time.Millisecond
	MinTickInterval     = 50 * time.Millisecond // fastest speed
	SpeedStep           = 5 * time.Millisecond  // decrease per difficulty bump
	DifficultyThreshold = 5                     // foods eaten between speed increases
)

// Food spawn settings
const (
	MaxSpawnAttempts    = 1000
	MinFoodHeadDistance = 3 // preferred Manhattan distance from the head
)

// Characters for rendering
const (
	CharHead  = '@'
	CharBody  = '#'
	CharFood  = '*'
	CharCrash = 'X'
	CharWallH = '-'
	CharWallV = '|'
	CharWallC = '+'
	CharEmpty = ' '
)

// File locations, relative to the working directory
const (
	HighScoreFile = "snake_scores.db"
	LogFile       = "snake.log"
	RecordDir     = "records"
)
