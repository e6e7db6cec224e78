// Package guest keeps workout history on local disk for unauthenticated
// use. Nothing here ever reaches the server; guest progress lives in a
// SQLite file under the user's state directory.
package guest

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/FerozaC/shukuma-wep-app-project/internal/session"
	"github.com/FerozaC/shukuma-wep-app-project/internal/streak"
)

// StateDB records completed guest sessions and the local streak.
type StateDB struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite state database at dir/guest.db.
func Open(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "guest.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS guest_sessions (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			cards_completed INTEGER NOT NULL,
			total_time      TEXT NOT NULL,
			cards           TEXT NOT NULL,
			completed_at    TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS guest_state (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			streak       INTEGER NOT NULL,
			total_cards  INTEGER NOT NULL,
			total_reps   INTEGER NOT NULL,
			last_workout TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state tables: %w", err)
	}

	return &StateDB{db: db}, nil
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// HistoryEntry is one locally recorded session.
type HistoryEntry struct {
	CardsCompleted int
	TotalTime      string
	Cards          []string
	CompletedAt    time.Time
}

// State mirrors the server's user aggregates for the local guest.
type State struct {
	Streak      int
	TotalCards  int
	TotalReps   int
	LastWorkout *time.Time
}

// RecordSession appends a completed session and updates the local streak and
// totals with the same policy the server applies.
func (s *StateDB) RecordSession(summary *session.Summary, now time.Time) (*State, error) {
	cards, err := json.Marshal(summary.Cards)
	if err != nil {
		return nil, fmt.Errorf("encoding cards: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO guest_sessions (cards_completed, total_time, cards, completed_at) VALUES (?, ?, ?, ?)`,
		summary.CardsCompleted, summary.TotalTime, string(cards), now)
	if err != nil {
		return nil, fmt.Errorf("inserting guest session: %w", err)
	}

	prev, err := readState(tx)
	if err != nil {
		return nil, err
	}

	next := State{
		Streak:      streak.Next(prev.Streak, prev.LastWorkout, now),
		LastWorkout: &now,
	}
	totals := streak.Totals{Cards: prev.TotalCards, Reps: prev.TotalReps}.Accumulate(summary.CardsCompleted)
	next.TotalCards = totals.Cards
	next.TotalReps = totals.Reps

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO guest_state (id, streak, total_cards, total_reps, last_workout) VALUES (1, ?, ?, ?, ?)`,
		next.Streak, next.TotalCards, next.TotalReps, now)
	if err != nil {
		return nil, fmt.Errorf("updating guest state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing guest session: %w", err)
	}
	return &next, nil
}

// GetState returns the current local aggregates.
func (s *StateDB) GetState() (*State, error) {
	st, err := readState(s.db)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// History returns locally recorded sessions, newest first.
func (s *StateDB) History(limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT cards_completed, total_time, cards, completed_at
		 FROM guest_sessions ORDER BY completed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying guest history: %w", err)
	}
	defer rows.Close()

	var result []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var cards string
		if err := rows.Scan(&e.CardsCompleted, &e.TotalTime, &cards, &e.CompletedAt); err != nil {
			return nil, fmt.Errorf("scanning guest session: %w", err)
		}
		if err := json.Unmarshal([]byte(cards), &e.Cards); err != nil {
			return nil, fmt.Errorf("decoding cards: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func readState(q querier) (State, error) {
	var st State
	var last sql.NullTime
	err := q.QueryRow(
		`SELECT streak, total_cards, total_reps, last_workout FROM guest_state WHERE id = 1`).
		Scan(&st.Streak, &st.TotalCards, &st.TotalReps, &last)
	if err == sql.ErrNoRows {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("reading guest state: %w", err)
	}
	if last.Valid {
		t := last.Time
		st.LastWorkout = &t
	}
	return st, nil
}
