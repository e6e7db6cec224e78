// Package session tracks a single workout run through an assembled deck,
// from start to the completion summary.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/FerozaC/shukuma-wep-app-project/internal/deck"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// State is the tracker's lifecycle position.
type State string

const (
	NotStarted State = "not_started"
	InProgress State = "in_progress"
	Completed  State = "completed"
)

var (
	// ErrNotStarted is returned when advancing a tracker that was never started.
	ErrNotStarted = errors.New("session not started")
	// ErrAlreadyStarted is returned when starting a tracker twice.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrCompleted is returned when advancing past the completion summary.
	ErrCompleted = errors.New("session already completed")
	// ErrDeckLocked is returned when re-shuffling after the first card pull.
	ErrDeckLocked = errors.New("deck locked after first card pull")
)

// Summary is the local result emitted on completion. It is what gets posted
// to the sessions endpoint; persistence is best-effort and the summary is
// shown regardless.
type Summary struct {
	CardsCompleted int           `json:"cardsCompleted"`
	TotalTime      string        `json:"totalTime"`
	Cards          []string      `json:"cards"`
	Elapsed        time.Duration `json:"-"`
	Stats          deck.Stats    `json:"stats"`
}

// Tracker is the workout session state machine. It is single-threaded and
// performs no I/O; callers persist the summary after completion.
type Tracker struct {
	catalog []models.Exercise
	rand    *rand.Rand
	now     func() time.Time

	state     State
	items     []deck.Item
	pos       int
	completed int
	startedAt time.Time
}

// NewTracker creates a tracker over the given catalog. The rand source
// drives shuffling; nowFn may be nil to use time.Now.
func NewTracker(catalog []models.Exercise, r *rand.Rand, nowFn func() time.Time) *Tracker {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Tracker{
		catalog: catalog,
		rand:    r,
		now:     nowFn,
		state:   NotStarted,
	}
}

// Start generates a fresh deck, records the start timestamp, and moves the
// tracker to InProgress.
func (t *Tracker) Start() error {
	if t.state != NotStarted {
		return ErrAlreadyStarted
	}
	t.items = deck.Build(t.catalog, t.rand)
	t.pos = 0
	t.completed = 0
	t.startedAt = t.now()
	t.state = InProgress
	return nil
}

// Reshuffle regenerates the deck. Permitted only before the first card has
// been pulled; afterwards the deck is locked for the rest of the session.
func (t *Tracker) Reshuffle() error {
	switch {
	case t.state == NotStarted:
		return ErrNotStarted
	case t.state == Completed:
		return ErrCompleted
	case t.pos > 0:
		return ErrDeckLocked
	}
	t.items = deck.Build(t.catalog, t.rand)
	return nil
}

// Current returns the item at the pointer, or false when the deck is
// exhausted or the session has not started.
func (t *Tracker) Current() (deck.Item, bool) {
	if t.state != InProgress || t.pos >= len(t.items) {
		return deck.Item{}, false
	}
	return t.items[t.pos], true
}

// Advance consumes the current item. Exercises increment the completed-card
// counter; breaks do not. Consuming the final item completes the session and
// returns the summary; every earlier call returns (nil, nil).
func (t *Tracker) Advance() (*Summary, error) {
	switch t.state {
	case NotStarted:
		return nil, ErrNotStarted
	case Completed:
		return nil, ErrCompleted
	}

	if t.pos < len(t.items) {
		if t.items[t.pos].IsExercise() {
			t.completed++
		}
		t.pos++
	}

	if t.pos < len(t.items) {
		return nil, nil
	}

	t.state = Completed
	elapsed := t.now().Sub(t.startedAt)
	return &Summary{
		CardsCompleted: t.completed,
		TotalTime:      FormatElapsed(elapsed),
		Cards:          t.exerciseNames(),
		Elapsed:        elapsed,
		Stats:          deck.ComputeStats(len(t.items), elapsed),
	}, nil
}

// State returns the tracker's lifecycle state.
func (t *Tracker) State() State { return t.state }

// CardsCompleted returns the number of exercise cards consumed so far.
func (t *Tracker) CardsCompleted() int { return t.completed }

// DeckSize returns the total item count including breaks.
func (t *Tracker) DeckSize() int { return len(t.items) }

func (t *Tracker) exerciseNames() []string {
	names := make([]string, 0, len(t.items))
	for _, it := range t.items {
		if it.IsExercise() {
			names = append(names, it.Exercise.Name)
		}
	}
	return names
}

// FormatElapsed renders a duration as "MMm:SSs:CCms" with centisecond
// precision, matching what history displays store verbatim.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02dm:%02ds:%02dms", minutes, seconds, centis)
}
