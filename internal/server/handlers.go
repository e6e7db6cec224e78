package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/FerozaC/shukuma-wep-app-project/internal/auth"
	"github.com/FerozaC/shukuma-wep-app-project/internal/catalog"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/observability"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

// mustUserID extracts the authenticated user id or writes a 401.
func mustUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no token provided"})
		return uuid.Nil, false
	}
	return userID, true
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	stats, err := s.store.GetUserStats(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type createSessionRequest struct {
	CardsCompleted int      `json:"cardsCompleted"`
	TotalTime      string   `json:"totalTime"`
	Cards          []string `json:"cards"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.CardsCompleted < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cardsCompleted must not be negative"})
		return
	}
	if req.Cards == nil {
		req.Cards = []string{}
	}

	session, err := s.store.CreateSession(r.Context(), userID, req.CardsCompleted, req.TotalTime, req.Cards)
	if err != nil {
		s.log.Error("create session error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create session"})
		return
	}

	observability.RecordSessionCompleted(req.CardsCompleted)
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	sessions, err := s.store.QuerySessions(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []models.SessionRow{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

type createWorkoutRequest struct {
	Name     string       `json:"name"`
	Cards    []string     `json:"cards"`
	Duration int          `json:"duration"`
	Level    models.Level `json:"level"`
	Goals    string       `json:"goals"`
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req createWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Cards) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cards must not be empty"})
		return
	}

	workout, err := s.store.CreateWorkout(r.Context(), userID, req.Name, req.Cards, req.Duration, req.Level, req.Goals)
	if err != nil {
		s.log.Error("create workout error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create workout"})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.store.QueryWorkouts(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if workouts == nil {
		workouts = []models.WorkoutRow{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

type assignWorkoutRequest struct {
	WorkoutID  uuid.UUID `json:"workoutId"`
	AssignedTo uuid.UUID `json:"assignedTo"`
}

func (s *Server) handleAssignWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req assignWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout, err := s.store.AssignWorkout(r.Context(), req.WorkoutID, userID, req.AssignedTo)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

type createReviewRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
	Content   string    `json:"content"`
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "content is required"})
		return
	}
	if req.SessionID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "sessionId is required"})
		return
	}

	review, err := s.store.CreateReview(r.Context(), userID, req.SessionID, req.Content)
	if err != nil {
		s.log.Error("create review error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create review"})
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// handleExercises returns the card catalog. Falls back to the built-in deck
// when the exercises table was never seeded.
func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.store.QueryExercises(r.Context())
	if err != nil {
		s.log.Error("query exercises error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get exercises"})
		return
	}
	if len(exercises) == 0 {
		exercises = catalog.Default()
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.DefaultFilters())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
