package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// CreateReview inserts feedback tied to a completed session. Reviews are
// immutable after creation.
func (db *DB) CreateReview(ctx context.Context, userID, sessionID uuid.UUID, content string) (*models.ReviewRow, error) {
	var r models.ReviewRow
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO reviews (id, user_id, session_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, session_id, content, created_at`,
		uuid.New(), userID, sessionID, content).
		Scan(&r.ID, &r.UserID, &r.SessionID, &r.Content, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting review: %w", err)
	}
	return &r, nil
}
