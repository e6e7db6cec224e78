// Package catalog holds the built-in exercise card catalog. The database
// exercises table takes precedence when populated; this list is the fallback
// for fresh installs and the guest-mode runner.
package catalog

import "github.com/FerozaC/shukuma-wep-app-project/internal/models"

var defaultExercises = []models.Exercise{
	{ID: "1", Name: "Jumping Jacks", Level: models.LevelMedium, CardNumber: 7, MuscleGroup: "Full Body"},
	{ID: "2", Name: "Push Ups", Level: models.LevelHard, CardNumber: 10, MuscleGroup: "Upper Body"},
	{ID: "3", Name: "Squats", Level: models.LevelEasy, CardNumber: 3, MuscleGroup: "Lower Body"},
	{ID: "4", Name: "Lunges", Level: models.LevelMedium, CardNumber: 5, MuscleGroup: "Lower Body"},
	{ID: "5", Name: "Burpees", Level: models.LevelHard, CardNumber: 9, MuscleGroup: "Full Body"},
	{ID: "6", Name: "Mountain Climbers", Level: models.LevelMedium, CardNumber: 6, MuscleGroup: "Core"},
	{ID: "7", Name: "Plank", Level: models.LevelEasy, CardNumber: 2, MuscleGroup: "Core"},
	{ID: "8", Name: "High Knees", Level: models.LevelMedium, CardNumber: 8, MuscleGroup: "Cardio"},
	{ID: "9", Name: "Tricep Dips", Level: models.LevelHard, CardNumber: 11, MuscleGroup: "Upper Body"},
	{ID: "10", Name: "Bicycle Crunches", Level: models.LevelMedium, CardNumber: 4, MuscleGroup: "Core"},
}

// Default returns a copy of the built-in catalog.
func Default() []models.Exercise {
	out := make([]models.Exercise, len(defaultExercises))
	copy(out, defaultExercises)
	return out
}

// Filters are the static filter options offered to clients.
type Filters struct {
	Durations []int    `json:"durations"`
	Levels    []string `json:"levels"`
	Goals     []string `json:"goals"`
}

// DefaultFilters returns the filter options for workout building.
func DefaultFilters() Filters {
	return Filters{
		Durations: []int{5, 10, 15, 20, 30},
		Levels:    []string{string(models.LevelEasy), string(models.LevelMedium), string(models.LevelHard)},
		Goals:     []string{"Cardio", "Strength", "Flexibility", "Full Body"},
	}
}
