package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when registering an already-used email.
var ErrEmailTaken = errors.New("email already registered")

const userColumns = `id, name, email, password_hash, streak, total_cards, total_reps, last_workout_date, created_at`

// CreateUser inserts a new user with zeroed aggregates. The password must
// already be hashed.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.UserRow, error) {
	row := db.Pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		uuid.New(), name, email, passwordHash)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// GetUser retrieves a user by id.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*models.UserRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.UserRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*models.UserRow, error) {
	var u models.UserRow
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Streak, &u.TotalCards, &u.TotalReps, &u.LastWorkoutDate, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
