package models

import (
	"time"

	"github.com/google/uuid"
)

// Level is an exercise difficulty tier.
type Level string

const (
	LevelEasy   Level = "Easy"
	LevelMedium Level = "Medium"
	LevelHard   Level = "Hard"
)

// Exercise is immutable reference data: one card in the catalog.
// Seeded at install time, never mutated by users.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       Level  `json:"level"`
	CardNumber  int    `json:"cardNumber"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Image       string `json:"image,omitempty"`
}

// UserRow is a row in the users table. Streak and lifetime totals are
// denormalized aggregates; the workout_sessions history remains the source
// of truth for audit.
type UserRow struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Streak          int        `json:"streak"`
	TotalCards      int        `json:"totalCards"`
	TotalReps       int        `json:"totalReps"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// SessionRow is a completed workout session. Append-only: rows are never
// updated after insert.
type SessionRow struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	CardsCompleted int       `json:"cardsCompleted"`
	TotalTime      string    `json:"totalTime"`
	Cards          []string  `json:"cards"`
	CreatedAt      time.Time `json:"createdAt"`
}

// WorkoutRow is a user-built custom workout, optionally assigned to another
// user.
type WorkoutRow struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	AssignedTo *uuid.UUID `json:"assignedTo,omitempty"`
	Name       string     `json:"name"`
	Cards      []string   `json:"cards"`
	Duration   int        `json:"duration"`
	Level      Level      `json:"level"`
	Goals      string     `json:"goals"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ReviewRow is free-text feedback tied to a session. Created once, immutable.
type ReviewRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	SessionID uuid.UUID `json:"sessionId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
