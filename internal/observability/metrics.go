package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shukuma",
		Subsystem: "sessions",
		Name:      "completed_total",
		Help:      "Workout sessions persisted.",
	})
	cardsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shukuma",
		Subsystem: "sessions",
		Name:      "cards_completed_total",
		Help:      "Exercise cards completed across all persisted sessions.",
	})
	usersRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shukuma",
		Subsystem: "users",
		Name:      "registered_total",
		Help:      "User registrations.",
	})
)

func init() {
	prometheus.MustRegister(sessionsCompleted, cardsCompleted, usersRegistered)
}

// RecordSessionCompleted counts a persisted session and its cards.
func RecordSessionCompleted(cards int) {
	sessionsCompleted.Inc()
	if cards > 0 {
		cardsCompleted.Add(float64(cards))
	}
}

// RecordUserRegistered counts a successful registration.
func RecordUserRegistered() {
	usersRegistered.Inc()
}
