// Package deck builds workout decks: a uniformly shuffled run of exercise
// cards with rest breaks interleaved at a fixed cadence.
package deck

import (
	"math"
	"math/rand"
	"time"

	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// BreakKind distinguishes the two rest lengths.
type BreakKind string

const (
	BreakShort BreakKind = "short"
	BreakLong  BreakKind = "long"
)

// Break cadence: a short break after every 2nd exercise, a long break after
// every 4th. Multiples of 4 take the long break, never both.
const (
	shortInterval = 2
	longInterval  = 4

	shortBreakSeconds = 30
	longBreakSeconds  = 60
)

const (
	shortBreakMessage = "Quick break! Catch your breath."
	longBreakMessage  = "Time for a longer break! Hydrate and catch your breath."
)

// Break is a scheduled rest interval between exercises.
type Break struct {
	DurationSec int       `json:"durationSec"`
	Kind        BreakKind `json:"kind"`
	Message     string    `json:"message"`
}

// Item is one entry in an assembled deck: either an exercise card or a
// break. Exactly one of Exercise/Break is non-nil.
type Item struct {
	Exercise *models.Exercise `json:"exercise,omitempty"`
	Break    *Break           `json:"break,omitempty"`
}

// IsExercise reports whether the item is an exercise card.
func (it Item) IsExercise() bool { return it.Exercise != nil }

// Shuffle returns a uniformly random permutation of cards using Fisher-Yates.
// The input slice is not modified. A nil r panics; callers inject the source
// so tests can seed it.
func Shuffle(cards []models.Exercise, r *rand.Rand) []models.Exercise {
	shuffled := make([]models.Exercise, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Assemble interleaves breaks into an exercise sequence. After every 4th
// exercise a long break is inserted; after every other 2nd exercise a short
// one. No break ever follows the final exercise.
func Assemble(cards []models.Exercise) []Item {
	items := make([]Item, 0, len(cards)+len(cards)/shortInterval)
	for i := range cards {
		items = append(items, Item{Exercise: &cards[i]})

		count := i + 1
		last := i == len(cards)-1
		switch {
		case last:
		case count%longInterval == 0:
			items = append(items, Item{Break: &Break{
				DurationSec: longBreakSeconds,
				Kind:        BreakLong,
				Message:     longBreakMessage,
			}})
		case count%shortInterval == 0:
			items = append(items, Item{Break: &Break{
				DurationSec: shortBreakSeconds,
				Kind:        BreakShort,
				Message:     shortBreakMessage,
			}})
		}
	}
	return items
}

// Draw shuffles the catalog and takes the first n cards, so a short deck is
// a random sample rather than a fixed prefix. n outside (0, len) draws the
// whole catalog.
func Draw(cards []models.Exercise, n int, r *rand.Rand) []models.Exercise {
	shuffled := Shuffle(cards, r)
	if n > 0 && n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// Build shuffles the catalog and assembles a fresh deck in one step.
func Build(cards []models.Exercise, r *rand.Rand) []Item {
	return Assemble(Shuffle(cards, r))
}

// Stats summarizes a finished deck run.
type Stats struct {
	AvgCardTime       time.Duration `json:"avgCardTime"`
	EstimatedCalories int           `json:"estimatedCalories"`
	Intensity         string        `json:"intensity"`
}

// ComputeStats derives workout stats from deck length and total elapsed
// time. Calories are estimated at 5 per minute; intensity buckets follow
// average seconds per card.
func ComputeStats(deckLen int, totalTime time.Duration) Stats {
	if deckLen == 0 {
		return Stats{Intensity: "Low"}
	}
	avg := totalTime / time.Duration(deckLen)
	intensity := "Low"
	switch {
	case avg < 15*time.Second:
		intensity = "High"
	case avg < 30*time.Second:
		intensity = "Medium"
	}
	return Stats{
		AvgCardTime:       avg,
		EstimatedCalories: int(math.Floor(totalTime.Minutes() * 5)),
		Intensity:         intensity,
	}
}
