// Package score persists the high score in a small sqlite database.
// Every read failure degrades to "no high score yet"; the game must
// keep running whatever happens to the file.
package score

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a handle to the high-score database. Construct it once in
// main and pass it down; there is no package-level state.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the high-score database at path.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS high_scores (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create score table: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Load returns the stored high score, or 0 if none is recorded or the
// row cannot be read. Read failures are logged, never surfaced.
func (s *Store) Load() int {
	var score int
	err := s.db.QueryRow(`SELECT score FROM high_scores WHERE id = 1`).Scan(&score)
	switch {
	case err == sql.ErrNoRows:
		return 0
	case err != nil:
		s.logger.Printf("error loading high score, treating as 0: %v", err)
		return 0
	}
	return score
}

// Save records score as the high score along with the current time.
func (s *Store) Save(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (id, score, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		score, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
