package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/FerozaC/shukuma-wep-app-project/internal/auth"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
	"github.com/FerozaC/shukuma-wep-app-project/internal/observability"
	"github.com/FerozaC/shukuma-wep-app-project/internal/storage"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *models.UserRow `json:"user"`
	Token string          `json:"token"`
}

func (r registerRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("valid email is required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("password hash error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	user, err := s.store.CreateUser(r.Context(), req.Name, strings.ToLower(req.Email), hash)
	if errors.Is(err, storage.ErrEmailTaken) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email already registered"})
		return
	}
	if err != nil {
		s.log.Error("create user error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("token generation error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to register"})
		return
	}

	observability.RecordUserRegistered()
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), strings.ToLower(req.Email))
	if errors.Is(err, storage.ErrNotFound) || (err == nil && !auth.CheckPassword(req.Password, user.PasswordHash)) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}
	if err != nil {
		s.log.Error("login lookup error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to login"})
		return
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("token generation error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to login"})
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no token provided"})
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, user)
}
