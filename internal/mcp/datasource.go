package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

// DataSource abstracts the data layer for MCP tools so tests can substitute
// a fake. *storage.DB is the production implementation.
type DataSource interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserRow, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*storage.UserStats, error)
	QuerySessions(ctx context.Context, userID uuid.UUID) ([]models.SessionRow, error)
	QueryExercises(ctx context.Context) ([]models.Exercise, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
