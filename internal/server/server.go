package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FerozaC/shukuma-wep-app-project/internal/auth"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

// Store abstracts the persistence layer for HTTP handlers. *storage.DB is
// the production implementation; tests substitute a fake.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.UserRow, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.UserRow, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserRow, error)
	CreateSession(ctx context.Context, userID uuid.UUID, cardsCompleted int, totalTime string, cards []string) (*models.SessionRow, error)
	QuerySessions(ctx context.Context, userID uuid.UUID) ([]models.SessionRow, error)
	CreateWorkout(ctx context.Context, userID uuid.UUID, name string, cards []string, duration int, level models.Level, goals string) (*models.WorkoutRow, error)
	QueryWorkouts(ctx context.Context, userID uuid.UUID) ([]models.WorkoutRow, error)
	AssignWorkout(ctx context.Context, workoutID, ownerID, assignedTo uuid.UUID) (*models.WorkoutRow, error)
	CreateReview(ctx context.Context, userID, sessionID uuid.UUID, content string) (*models.ReviewRow, error)
	QueryExercises(ctx context.Context) ([]models.Exercise, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*storage.UserStats, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  Store
	tokens *auth.Tokens
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, tokens *auth.Tokens, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		tokens: tokens,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Catalog endpoints work with or without a token (guest mode)
		r.Group(func(r chi.Router) {
			r.Use(OptionalBearerAuth(s.tokens))
			r.Get("/exercises", s.handleExercises)
			r.Get("/filters", s.handleFilters)
		})

		// Everything else requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(s.tokens))
			r.Get("/auth/me", s.handleMe)
			r.Get("/stats", s.handleStats)
			r.Post("/sessions", s.handleCreateSession)
			r.Get("/sessions", s.handleSessions)
			r.Post("/workouts", s.handleCreateWorkout)
			r.Get("/workouts", s.handleWorkouts)
			r.Post("/workouts/assign", s.handleAssignWorkout)
			r.Post("/reviews", s.handleCreateReview)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}
