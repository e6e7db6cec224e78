package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/FerozaC/shukuma-wep-app-project/internal/auth"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	users     map[string]*models.UserRow
	sessions  []models.SessionRow
	workouts  map[uuid.UUID]*models.WorkoutRow
	exercises []models.Exercise
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*models.UserRow),
		workouts: make(map[uuid.UUID]*models.WorkoutRow),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, passwordHash string) (*models.UserRow, error) {
	if _, ok := f.users[email]; ok {
		return nil, storage.ErrEmailTaken
	}
	u := &models.UserRow{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = u
	return u, nil
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*models.UserRow, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.UserRow, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) CreateSession(_ context.Context, userID uuid.UUID, cardsCompleted int, totalTime string, cards []string) (*models.SessionRow, error) {
	row := models.SessionRow{
		ID:             uuid.New(),
		UserID:         userID,
		CardsCompleted: cardsCompleted,
		TotalTime:      totalTime,
		Cards:          cards,
		CreatedAt:      time.Now(),
	}
	f.sessions = append(f.sessions, row)
	return &row, nil
}

func (f *fakeStore) QuerySessions(_ context.Context, userID uuid.UUID) ([]models.SessionRow, error) {
	var out []models.SessionRow
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateWorkout(_ context.Context, userID uuid.UUID, name string, cards []string, duration int, level models.Level, goals string) (*models.WorkoutRow, error) {
	row := &models.WorkoutRow{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Cards:     cards,
		Duration:  duration,
		Level:     level,
		Goals:     goals,
		CreatedAt: time.Now(),
	}
	f.workouts[row.ID] = row
	return row, nil
}

func (f *fakeStore) QueryWorkouts(_ context.Context, userID uuid.UUID) ([]models.WorkoutRow, error) {
	var out []models.WorkoutRow
	for _, w := range f.workouts {
		if w.UserID == userID || (w.AssignedTo != nil && *w.AssignedTo == userID) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeStore) AssignWorkout(_ context.Context, workoutID, ownerID, assignedTo uuid.UUID) (*models.WorkoutRow, error) {
	w, ok := f.workouts[workoutID]
	if !ok || w.UserID != ownerID {
		return nil, storage.ErrNotFound
	}
	w.AssignedTo = &assignedTo
	return w, nil
}

func (f *fakeStore) CreateReview(_ context.Context, userID, sessionID uuid.UUID, content string) (*models.ReviewRow, error) {
	return &models.ReviewRow{
		ID:        uuid.New(),
		UserID:    userID,
		SessionID: sessionID,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeStore) QueryExercises(_ context.Context) ([]models.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeStore) GetUserStats(_ context.Context, userID uuid.UUID) (*storage.UserStats, error) {
	u, err := f.GetUser(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	return &storage.UserStats{
		Streak:     u.Streak,
		TotalCards: u.TotalCards,
		TotalReps:  u.TotalReps,
	}, nil
}

var _ Store = (*fakeStore)(nil)

func testServer(store Store) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, auth.NewTokens("test-secret"), log)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the API and returns the bearer token.
func register(t *testing.T, srv *Server, email string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Thandi", "email": email, "password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.Token
}

// TestRegisterAndLogin verifies the full register/login round trip, including
// duplicate email and wrong password rejections.
func TestRegisterAndLogin(t *testing.T) {
	srv := testServer(newFakeStore())

	token := register(t, srv, "thandi@example.com")
	if token == "" {
		t.Fatal("empty token from register")
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Thandi", "email": "thandi@example.com", "password": "secret1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "thandi@example.com", "password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("login status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "thandi@example.com", "password": "wrong-pass",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret1",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", rec.Code)
	}
}

// TestRegisterValidation verifies invalid registration payloads are rejected.
func TestRegisterValidation(t *testing.T) {
	srv := testServer(newFakeStore())
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "a@b.c", "password": "secret1"}},
		{"bad email", map[string]string{"name": "A", "email": "nope", "password": "secret1"}},
		{"short password", map[string]string{"name": "A", "email": "a@b.c", "password": "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

// TestCreateAndListSessions verifies posting a completed session and reading
// it back, plus rejection of negative card counts.
func TestCreateAndListSessions(t *testing.T) {
	srv := testServer(newFakeStore())
	token := register(t, srv, "s@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/sessions", token, map[string]any{
		"cardsCompleted": 8,
		"totalTime":      "05m:30s:00ms",
		"cards":          []string{"Push ups", "Squats"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create session status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/sessions", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list sessions status = %d", rec.Code)
	}
	var sessions []models.SessionRow
	if err := json.NewDecoder(rec.Body).Decode(&sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].CardsCompleted != 8 {
		t.Errorf("cardsCompleted = %d, want 8", sessions[0].CardsCompleted)
	}
	if sessions[0].TotalTime != "05m:30s:00ms" {
		t.Errorf("totalTime = %q, want %q", sessions[0].TotalTime, "05m:30s:00ms")
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/sessions", token, map[string]any{
		"cardsCompleted": -1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative cards status = %d, want 400", rec.Code)
	}
}

// TestSessionsRequireAuth verifies session endpoints reject missing and
// invalid tokens.
func TestSessionsRequireAuth(t *testing.T) {
	srv := testServer(newFakeStore())

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/sessions", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/sessions", "garbage", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token status = %d, want 401", rec.Code)
	}
}

// TestWorkoutAssignment verifies creating a workout and assigning it to
// another user, and that non-owners cannot assign.
func TestWorkoutAssignment(t *testing.T) {
	store := newFakeStore()
	srv := testServer(store)
	ownerToken := register(t, srv, "owner@example.com")
	otherToken := register(t, srv, "other@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/workouts", ownerToken, map[string]any{
		"name":  "Leg day",
		"cards": []string{"Squats", "Lunges"},
		"level": "Medium",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create workout status = %d, body %s", rec.Code, rec.Body.String())
	}
	var workout models.WorkoutRow
	if err := json.NewDecoder(rec.Body).Decode(&workout); err != nil {
		t.Fatalf("decode workout: %v", err)
	}

	other := store.users["other@example.com"]
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/workouts/assign", ownerToken, map[string]any{
		"workoutId":  workout.ID,
		"assignedTo": other.ID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("assign status = %d, body %s", rec.Code, rec.Body.String())
	}

	// The assignee sees it in their list.
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/workouts", otherToken, nil)
	var workouts []models.WorkoutRow
	if err := json.NewDecoder(rec.Body).Decode(&workouts); err != nil {
		t.Fatalf("decode workouts: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("assignee workouts = %d, want 1", len(workouts))
	}

	// A non-owner cannot assign someone else's workout.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/workouts/assign", otherToken, map[string]any{
		"workoutId":  workout.ID,
		"assignedTo": other.ID,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("non-owner assign status = %d, want 404", rec.Code)
	}
}

// TestCreateWorkoutValidation verifies an empty card list is rejected.
func TestCreateWorkoutValidation(t *testing.T) {
	srv := testServer(newFakeStore())
	token := register(t, srv, "w@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/workouts", token, map[string]any{
		"name": "Empty", "cards": []string{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestCreateReviewValidation verifies content and sessionId are required.
func TestCreateReviewValidation(t *testing.T) {
	srv := testServer(newFakeStore())
	token := register(t, srv, "r@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"sessionId": uuid.New(),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing content status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"content": "Great workout",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing sessionId status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/reviews", token, map[string]any{
		"sessionId": uuid.New(),
		"content":   "Great workout",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("valid review status = %d, want 200", rec.Code)
	}
}

// TestExercisesFallback verifies /exercises serves the built-in catalog when
// the table is empty, without requiring a token.
func TestExercisesFallback(t *testing.T) {
	srv := testServer(newFakeStore())

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/exercises", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var exercises []models.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&exercises); err != nil {
		t.Fatalf("decode exercises: %v", err)
	}
	if len(exercises) == 0 {
		t.Error("no exercises in fallback catalog")
	}
}

// TestExercisesSeeded verifies seeded rows take precedence over the built-in
// catalog.
func TestExercisesSeeded(t *testing.T) {
	store := newFakeStore()
	store.exercises = []models.Exercise{{ID: "x1", Name: "Custom", Level: models.LevelHard, CardNumber: 1}}
	srv := testServer(store)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/exercises", "", nil)
	var exercises []models.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&exercises); err != nil {
		t.Fatalf("decode exercises: %v", err)
	}
	if len(exercises) != 1 || exercises[0].Name != "Custom" {
		t.Errorf("exercises = %+v, want the seeded row only", exercises)
	}
}

// TestStats verifies the stats endpoint returns the authenticated user's
// aggregates.
func TestStats(t *testing.T) {
	store := newFakeStore()
	srv := testServer(store)
	token := register(t, srv, "stats@example.com")
	store.users["stats@example.com"].Streak = 4
	store.users["stats@example.com"].TotalCards = 40

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/stats", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var stats storage.UserStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Streak != 4 {
		t.Errorf("streak = %d, want 4", stats.Streak)
	}
	if stats.TotalCards != 40 {
		t.Errorf("totalCards = %d, want 40", stats.TotalCards)
	}
}

// TestMe verifies /auth/me returns the user record without the password hash.
func TestMe(t *testing.T) {
	srv := testServer(newFakeStore())
	token := register(t, srv, "me@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if body["email"] != "me@example.com" {
		t.Errorf("email = %v, want me@example.com", body["email"])
	}
	if _, ok := body["passwordHash"]; ok {
		t.Error("password hash leaked in response")
	}
}

// TestHealthz verifies the liveness endpoint.
func TestHealthz(t *testing.T) {
	srv := testServer(newFakeStore())
	rec := doJSON(t, srv, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
