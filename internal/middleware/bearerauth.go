// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	userKey  ctxKey = "user"
	tokenKey ctxKey = "token"
)

// BearerAuth returns a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <jwt>" header signed with the given
// HMAC secret and carrying the expected issuer and audience. On success the
// token's subject claim is stored in the request context as the authenticated
// user ID, along with the raw token for pass-through to the auth backend.
// Anything else is rejected with 401 before any handler runs.
func BearerAuth(secret []byte, issuer, audience string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := IdentityFromToken(raw, secret, issuer, audience)
			if err != nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = WithAccessToken(ctx, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromToken validates a raw JWT and extracts the caller identity from
// its subject claim. The token must be HMAC-signed with secret, unexpired,
// and carry the given issuer and audience.
func IdentityFromToken(raw string, secret []byte, issuer, audience string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("subject claim: %w", err)
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// WithAccessToken returns a context carrying the raw bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetUserIDFromContext extracts the authenticated user ID from the request
// context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(userKey).(string); ok {
		return s
	}
	return ""
}

// GetAccessTokenFromContext extracts the raw bearer token from the request
// context. Returns an empty string if not found.
func GetAccessTokenFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(tokenKey).(string); ok {
		return s
	}
	return ""
}
