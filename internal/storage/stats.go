package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserStats is the aggregate/streak payload for the dashboard.
type UserStats struct {
	Streak      int          `json:"streak"`
	TotalCards  int          `json:"totalCards"`
	TotalReps   int          `json:"totalReps"`
	LastWorkout *time.Time   `json:"lastWorkout"`
	WeeklyData  []WeeklyDay  `json:"weeklyData"`
}

// WeeklyDay is the card count for one of the trailing seven days.
type WeeklyDay struct {
	Day   string `json:"day"`
	Cards int    `json:"cards"`
}

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// GetUserStats returns streak, lifetime totals, and per-day card counts for
// the trailing seven days (today inclusive, oldest day first).
func (db *DB) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	u, err := db.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		Streak:      u.Streak,
		TotalCards:  u.TotalCards,
		TotalReps:   u.TotalReps,
		LastWorkout: u.LastWorkoutDate,
	}

	now := time.Now()
	rows, err := db.Pool.Query(ctx,
		`SELECT created_at, cards_completed
		 FROM workout_sessions
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at`, userID, weekStart(now))
	if err != nil {
		return nil, fmt.Errorf("querying weekly sessions: %w", err)
	}
	defer rows.Close()

	var sessions []weeklySession
	for rows.Next() {
		var s weeklySession
		if err := rows.Scan(&s.createdAt, &s.cards); err != nil {
			return nil, fmt.Errorf("scanning weekly session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.WeeklyData = buildWeekly(now, sessions)
	return stats, nil
}

type weeklySession struct {
	createdAt time.Time
	cards     int
}

// weekStart returns midnight six calendar days before now, so the weekly
// window covers exactly the trailing seven dates, today inclusive. A plain
// now minus 7*24h would span up to eight dates and fold week-old sessions
// into today's bucket.
func weekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
}

// buildWeekly folds session card counts into one bucket per trailing
// calendar day, oldest first, ending with today. Days are named in now's
// location.
func buildWeekly(now time.Time, sessions []weeklySession) []WeeklyDay {
	counts := make(map[string]int, 7)
	for _, s := range sessions {
		counts[dayNames[s.createdAt.In(now.Location()).Weekday()]] += s.cards
	}

	out := make([]WeeklyDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dayNames[now.AddDate(0, 0, -i).Weekday()]
		out = append(out, WeeklyDay{Day: day, Cards: counts[day]})
	}
	return out
}
