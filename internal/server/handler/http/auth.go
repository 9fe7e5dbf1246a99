// Package http provides the HTTP handlers for authentication and todos,
// translating service outcomes into response codes.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imalykh/todolist/internal/middleware"
	"github.com/imalykh/todolist/internal/models"
	"github.com/imalykh/todolist/internal/service"
	"go.uber.org/zap"
)

// AuthService defines the authentication operations required by the HTTP handlers.
type AuthService interface {
	// SignUp registers a new account and returns its first session.
	SignUp(ctx context.Context, email, password, displayName, phone string) (*models.Session, error)
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	// SignOut invalidates the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
}

// AuthHandler handles HTTP requests for sign-up, sign-in and sign-out.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Log records backend failures server-side; responses stay generic.
	Log *zap.Logger
}

// SignUpRequest represents the JSON payload for account registration.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	PhoneNumber string `json:"phone_number"`
}

// SignInRequest represents the JSON payload for password sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /api/auth/signup.
// It validates the payload at the edge, registers the account and returns
// the issued session. A duplicate registration yields 409.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.SignUp(r.Context(), req.Email, req.Password, req.DisplayName, req.PhoneNumber)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrAlreadyRegistered):
		http.Error(w, "user already exists", http.StatusConflict)
		return
	default:
		h.Log.Error("sign-up failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// SignIn handles POST /api/auth/signin.
// Any rejected credential pair yields 401 with a fixed message.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	// Blank credentials can never authenticate, so they are rejected here
	// without a round trip to the auth backend.
	if req.Email == "" || req.Password == "" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	session, err := h.AuthService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// SignOut handles POST /api/auth/signout.
// It invalidates the backend session behind the caller's bearer token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetAccessTokenFromContext(r.Context())
	if token == "" {
		unauthorized(w)
		return
	}

	if err := h.AuthService.SignOut(r.Context(), token); err != nil {
		h.Log.Error("sign-out failed", zap.Error(err))
		http.Error(w, "failed to sign out", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
