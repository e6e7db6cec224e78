package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

const workoutColumns = `id, user_id, assigned_to, name, cards, duration, level, goals, created_at`

// CreateWorkout inserts a custom workout built by the user.
func (db *DB) CreateWorkout(ctx context.Context, userID uuid.UUID, name string, cards []string, duration int, level models.Level, goals string) (*models.WorkoutRow, error) {
	row := db.Pool.QueryRow(ctx,
		`INSERT INTO workouts (id, user_id, name, cards, duration, level, goals)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+workoutColumns,
		uuid.New(), userID, name, cards, duration, level, goals)

	w, err := scanWorkout(row)
	if err != nil {
		return nil, fmt.Errorf("inserting workout: %w", err)
	}
	return w, nil
}

// QueryWorkouts retrieves workouts owned by or assigned to the user, newest
// first.
func (db *DB) QueryWorkouts(ctx context.Context, userID uuid.UUID) ([]models.WorkoutRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+workoutColumns+`
		 FROM workouts
		 WHERE user_id = $1 OR assigned_to = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRow
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, *w)
	}
	return result, rows.Err()
}

// AssignWorkout assigns an existing workout to another user. Only the owner
// may assign.
func (db *DB) AssignWorkout(ctx context.Context, workoutID, ownerID, assignedTo uuid.UUID) (*models.WorkoutRow, error) {
	row := db.Pool.QueryRow(ctx,
		`UPDATE workouts SET assigned_to = $3
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+workoutColumns,
		workoutID, ownerID, assignedTo)

	w, err := scanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("assigning workout: %w", err)
	}
	return w, nil
}

func scanWorkout(row pgx.Row) (*models.WorkoutRow, error) {
	var w models.WorkoutRow
	err := row.Scan(&w.ID, &w.UserID, &w.AssignedTo, &w.Name, &w.Cards,
		&w.Duration, &w.Level, &w.Goals, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
