// Package storage provides SQLite-based persistence for win/draw tallies.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only aggregate counts are stored; no per-game records or moves.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/connect4"
)

// Outcome keys stored in the tallies table.
const (
	OutcomePlayer1 = "player1"
	OutcomePlayer2 = "player2"
	OutcomeDraw    = "draw"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Tallies holds the aggregate results of all finished games.
type Tallies struct {
	Player1Wins int
	Player2Wins int
	Draws       int
	LastPlayed  time.Time // zero if nothing was recorded yet
}

// Total returns the number of finished games.
func (t Tallies) Total() int {
	return t.Player1Wins + t.Player2Wins + t.Draws
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows a single writer; sessions share one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tallies (
			outcome TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// OutcomeKey maps a terminal game state to its tally key.
func OutcomeKey(st connect4.State) (string, error) {
	switch {
	case st.Status == connect4.Draw:
		return OutcomeDraw, nil
	case st.Status == connect4.Won && st.Winner == connect4.Player1:
		return OutcomePlayer1, nil
	case st.Status == connect4.Won && st.Winner == connect4.Player2:
		return OutcomePlayer2, nil
	default:
		return "", fmt.Errorf("storage: game is not finished (%s)", st.Status)
	}
}

// RecordOutcome adds one finished game to the tallies.
func (s *Store) RecordOutcome(st connect4.State) error {
	key, err := OutcomeKey(st)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO tallies (outcome, count, updated_at)
		 VALUES (?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(outcome) DO UPDATE SET
		   count = count + 1,
		   updated_at = CURRENT_TIMESTAMP`,
		key,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record outcome: %w", err)
	}
	return nil
}

// Tallies returns the aggregate results.
func (s *Store) Tallies() (Tallies, error) {
	var t Tallies

	rows, err := s.db.Query(`SELECT outcome, count, updated_at FROM tallies`)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query tallies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			outcome   string
			count     int
			updatedAt any
		)
		if err := rows.Scan(&outcome, &count, &updatedAt); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch outcome {
		case OutcomePlayer1:
			t.Player1Wins = count
		case OutcomePlayer2:
			t.Player2Wins = count
		case OutcomeDraw:
			t.Draws = count
		}

		if ts := parseTime(updatedAt); ts.After(t.LastPlayed) {
			t.LastPlayed = ts
		}
	}

	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return t, nil
}

// ResetTallies deletes all recorded results.
func (s *Store) ResetTallies() error {
	if _, err := s.db.Exec("DELETE FROM tallies"); err != nil {
		return fmt.Errorf("storage: cannot reset tallies: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
