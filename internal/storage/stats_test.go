package storage

import (
	"testing"
	"time"
)

// TestWeekStart verifies the weekly window opens at midnight six days back,
// so a session exactly seven days old falls outside it even when it was
// logged later in the day than now.
func TestWeekStart(t *testing.T) {
	now := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC) // Mon 18:00
	start := weekStart(now)

	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // Tue 00:00
	if !start.Equal(want) {
		t.Fatalf("weekStart = %v, want %v", start, want)
	}

	lastMonday := time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC)
	if !lastMonday.Before(start) {
		t.Errorf("session from a week ago (%v) not excluded by window start %v", lastMonday, start)
	}
	tuesdayMorning := time.Date(2025, 6, 10, 0, 30, 0, 0, time.UTC)
	if tuesdayMorning.Before(start) {
		t.Errorf("session six days back (%v) excluded by window start %v", tuesdayMorning, start)
	}
}

// TestBuildWeekly verifies sessions land in their own weekday bucket, same-day
// sessions sum, and the output runs oldest to today.
func TestBuildWeekly(t *testing.T) {
	now := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC) // Mon
	sessions := []weeklySession{
		{createdAt: time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC), cards: 5},  // Sat
		{createdAt: time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC), cards: 3}, // Sat again
		{createdAt: time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), cards: 7},  // today
	}

	week := buildWeekly(now, sessions)
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	if week[0].Day != "Tue" {
		t.Errorf("oldest day = %q, want Tue", week[0].Day)
	}
	if week[6].Day != "Mon" {
		t.Errorf("last day = %q, want Mon (today)", week[6].Day)
	}
	if week[6].Cards != 7 {
		t.Errorf("today's cards = %d, want 7", week[6].Cards)
	}
	if week[5].Day != "Sun" || week[5].Cards != 0 {
		t.Errorf("Sun bucket = %+v, want empty", week[5])
	}
	if week[4].Day != "Sat" || week[4].Cards != 8 {
		t.Errorf("Sat bucket = %+v, want 8 cards", week[4])
	}
}

// TestBuildWeeklyEmpty verifies a user with no recent sessions still gets all
// seven zeroed buckets.
func TestBuildWeeklyEmpty(t *testing.T) {
	now := time.Date(2025, 6, 16, 18, 0, 0, 0, time.UTC)
	week := buildWeekly(now, nil)
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	for _, d := range week {
		if d.Cards != 0 {
			t.Errorf("%s cards = %d, want 0", d.Day, d.Cards)
		}
	}
}
