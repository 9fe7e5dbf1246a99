// Package service provides the business logic for authentication and
// user-owned todos, delegating persistence and credential handling to
// adapter interfaces.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/imalykh/todolist/internal/models"
)

// CredentialStore defines the auth backend operations required by the
// authentication service.
type CredentialStore interface {
	// SignUp registers a new account and returns its first session.
	// data carries optional user metadata.
	SignUp(ctx context.Context, email, password string, data map[string]any) (*models.Session, error)
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	// SignOut invalidates the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
}

// AuthService implements sign-up, sign-in and sign-out on top of a
// CredentialStore, normalizing backend-specific failures into the
// shared error set.
type AuthService struct {
	creds CredentialStore
}

// NewAuthService constructs an AuthService using the provided credential store.
func NewAuthService(creds CredentialStore) *AuthService {
	return &AuthService{creds: creds}
}

// SignUp registers a new account. Email and password must be non-blank;
// display name and phone are optional metadata passed through to the backend.
// A duplicate registration surfaces as ErrAlreadyRegistered, any other
// backend failure as ErrAuthBackend.
func (s *AuthService) SignUp(ctx context.Context, email, password, displayName, phone string) (*models.Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	session, err := s.creds.SignUp(ctx, email, password, map[string]any{
		"display_name": displayName,
		"phone":        phone,
	})
	if err != nil {
		return nil, classifySignupFailure(err)
	}
	// Some backends report a duplicate registration as a 2xx with no session.
	if session == nil {
		return nil, ErrAlreadyRegistered
	}
	return session, nil
}

// SignIn authenticates email and password. Every backend rejection maps to
// ErrInvalidCredentials; the specific reason is deliberately not distinguished.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	session, err := s.creds.SignIn(ctx, email, password)
	if err != nil || session == nil {
		return nil, ErrInvalidCredentials
	}
	return session, nil
}

// SignOut invalidates the session behind accessToken.
func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	if err := s.creds.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("%w: %s", ErrAuthBackend, err)
	}
	return nil
}

// classifySignupFailure maps a raw sign-up failure to either
// ErrAlreadyRegistered or ErrAuthBackend. The backend reports duplicates
// only through message text, so the phrasing it uses is matched here and
// nowhere else.
func classifySignupFailure(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "already registered") || strings.Contains(msg, "duplicate key") {
		return ErrAlreadyRegistered
	}
	return fmt.Errorf("%w: %s", ErrAuthBackend, err)
}
