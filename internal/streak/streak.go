// Package streak computes the consecutive-day workout streak and lifetime
// aggregate counters from session history.
package streak

import "time"

// RepsPerCard converts completed cards into lifetime rep credit.
const RepsPerCard = 10

// Next returns the streak value after completing a session at now, given the
// current streak and the previous workout time.
//
// A session already logged on today's calendar date leaves the streak
// unchanged, so repeat sessions on the same day never double-count. A last
// workout exactly yesterday extends the streak; any longer gap, or no
// history at all, resets it to 1. Calendar days are compared in now's
// location.
func Next(current int, lastWorkout *time.Time, now time.Time) int {
	if lastWorkout == nil {
		return 1
	}

	today := midnight(now)
	lastDay := midnight(lastWorkout.In(now.Location()))
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case lastDay.Equal(today):
		return current
	case lastDay.Equal(yesterday):
		return current + 1
	default:
		return 1
	}
}

// Totals holds the lifetime counters stored on the user record.
type Totals struct {
	Cards int
	Reps  int
}

// Accumulate adds one session's card count to the lifetime totals.
func (t Totals) Accumulate(cardsCompleted int) Totals {
	return Totals{
		Cards: t.Cards + cardsCompleted,
		Reps:  t.Reps + cardsCompleted*RepsPerCard,
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
