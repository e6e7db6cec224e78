// Command shukuma-cli runs a workout in the terminal without an account.
// History and streak are kept in a local SQLite file and never leave the
// machine (guest mode).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/FerozaC/shukuma-wep-app-project/internal/catalog"
	"github.com/FerozaC/shukuma-wep-app-project/internal/deck"
	"github.com/FerozaC/shukuma-wep-app-project/internal/guest"
	"github.com/FerozaC/shukuma-wep-app-project/internal/session"
)

func main() {
	stateDir := flag.String("state-dir", defaultStateDir(), "directory for local guest history")
	cards := flag.Int("cards", 8, "number of exercise cards to draw")
	auto := flag.Bool("auto", false, "advance through the deck without prompting")
	showHistory := flag.Bool("history", false, "print local history and exit")
	showStats := flag.Bool("stats", false, "print local streak and totals and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	state, err := guest.Open(*stateDir)
	if err != nil {
		log.Error("failed to open guest state", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	switch {
	case *showHistory:
		if err := printHistory(state); err != nil {
			log.Error("failed to read history", "error", err)
			os.Exit(1)
		}
	case *showStats:
		if err := printStats(state); err != nil {
			log.Error("failed to read stats", "error", err)
			os.Exit(1)
		}
	default:
		if err := runWorkout(state, *cards, *auto); err != nil {
			log.Error("workout failed", "error", err)
			os.Exit(1)
		}
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shukuma"
	}
	return filepath.Join(home, ".shukuma")
}

func runWorkout(state *guest.StateDB, cards int, auto bool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	drawn := deck.Draw(catalog.Default(), cards, r)

	tracker := session.NewTracker(drawn, r, nil)
	if err := tracker.Start(); err != nil {
		return err
	}

	fmt.Printf("Workout started: %d cards. Press enter to advance.\n\n", len(drawn))

	stdin := bufio.NewScanner(os.Stdin)
	for {
		item, ok := tracker.Current()
		if ok {
			if item.IsExercise() {
				fmt.Printf("  [%s] %s (%s)\n", item.Exercise.Level, item.Exercise.Name, item.Exercise.MuscleGroup)
			} else {
				fmt.Printf("  -- %s (%ds rest)\n", item.Break.Message, item.Break.DurationSec)
			}
		}

		if !auto {
			if !stdin.Scan() {
				fmt.Println("\nWorkout abandoned; nothing recorded.")
				return nil
			}
		}

		summary, err := tracker.Advance()
		if err != nil {
			return err
		}
		if summary == nil {
			continue
		}

		fmt.Printf("\nDone! %d cards in %s (%s intensity, ~%d kcal)\n",
			summary.CardsCompleted, summary.TotalTime, summary.Stats.Intensity, summary.Stats.EstimatedCalories)

		st, err := state.RecordSession(summary, time.Now())
		if err != nil {
			// Best-effort: the summary was already shown.
			fmt.Fprintf(os.Stderr, "warning: failed to record session locally: %v\n", err)
			return nil
		}
		fmt.Printf("Local streak: %d day(s) | lifetime cards: %d | lifetime reps: %d\n",
			st.Streak, st.TotalCards, st.TotalReps)
		return nil
	}
}

func printHistory(state *guest.StateDB) error {
	entries, err := state.History(20)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No local sessions recorded yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %2d cards  %s\n", e.CompletedAt.Local().Format("2006-01-02 15:04"), e.CardsCompleted, e.TotalTime)
	}
	return nil
}

func printStats(state *guest.StateDB) error {
	st, err := state.GetState()
	if err != nil {
		return err
	}
	last := "never"
	if st.LastWorkout != nil {
		last = st.LastWorkout.Local().Format("2006-01-02")
	}
	fmt.Printf("Streak: %d day(s)\nTotal cards: %d\nTotal reps: %d\nLast workout: %s\n",
		st.Streak, st.TotalCards, st.TotalReps, last)
	return nil
}
