package storage

import (
	"context"
	"fmt"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// QueryExercises returns the exercise catalog ordered by card number. An
// empty result means the table was never seeded; callers fall back to the
// built-in catalog.
func (db *DB) QueryExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, level, card_number, muscle_group, image
		 FROM exercises
		 ORDER BY card_number`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Level, &e.CardNumber, &e.MuscleGroup, &e.Image); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// UpsertExercise inserts or updates a catalog entry. Returns true if a new
// row was inserted.
func (db *DB) UpsertExercise(ctx context.Context, e models.Exercise) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO exercises (id, name, level, card_number, muscle_group, image)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
			SET name = $2, level = $3, card_number = $4, muscle_group = $5, image = $6`,
		e.ID, e.Name, e.Level, e.CardNumber, e.MuscleGroup, e.Image)
	if err != nil {
		return false, fmt.Errorf("upserting exercise: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
