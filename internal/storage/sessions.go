package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/streak"
)

// CreateSession appends a completed workout session and updates the owning
// user's streak and lifetime totals in the same transaction, so the
// denormalized aggregates never drift from the append-only history. The user
// row is locked for the read-modify-write to keep concurrent completions
// from double-counting.
func (db *DB) CreateSession(ctx context.Context, userID uuid.UUID, cardsCompleted int, totalTime string, cards []string) (*models.SessionRow, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	s := models.SessionRow{
		ID:             uuid.New(),
		UserID:         userID,
		CardsCompleted: cardsCompleted,
		TotalTime:      totalTime,
		Cards:          cards,
		CreatedAt:      now,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_sessions (id, user_id, cards_completed, total_time, cards, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.CardsCompleted, s.TotalTime, s.Cards, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}

	var current int
	var totalCards, totalReps int
	var lastWorkout *time.Time
	err = tx.QueryRow(ctx,
		`SELECT streak, total_cards, total_reps, last_workout_date
		 FROM users WHERE id = $1 FOR UPDATE`, userID).
		Scan(&current, &totalCards, &totalReps, &lastWorkout)
	if err != nil {
		return nil, fmt.Errorf("locking user row: %w", err)
	}

	newStreak := streak.Next(current, lastWorkout, now)
	totals := streak.Totals{Cards: totalCards, Reps: totalReps}.Accumulate(cardsCompleted)

	_, err = tx.Exec(ctx,
		`UPDATE users
		 SET streak = $2, total_cards = $3, total_reps = $4, last_workout_date = $5
		 WHERE id = $1`,
		userID, newStreak, totals.Cards, totals.Reps, now)
	if err != nil {
		return nil, fmt.Errorf("updating user aggregates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing session: %w", err)
	}
	return &s, nil
}

// QuerySessions retrieves a user's session history, newest first.
func (db *DB) QuerySessions(ctx context.Context, userID uuid.UUID) ([]models.SessionRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, cards_completed, total_time, cards, created_at
		 FROM workout_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.SessionRow
	for rows.Next() {
		var s models.SessionRow
		if err := rows.Scan(&s.ID, &s.UserID, &s.CardsCompleted, &s.TotalTime, &s.Cards, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetSession retrieves a single session by id.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*models.SessionRow, error) {
	var s models.SessionRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, cards_completed, total_time, cards, created_at
		 FROM workout_sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.UserID, &s.CardsCompleted, &s.TotalTime, &s.Cards, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return &s, nil
}
