// Package models defines the core data structures for sessions and todos.
package models

import "time"

// Session represents an authenticated login issued by the auth backend.
type Session struct {
	// AccessToken is the bearer token presented on authenticated requests.
	AccessToken string `json:"access_token"`
	// RefreshToken can be exchanged for a new session once the access token expires.
	RefreshToken string `json:"refresh_token"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// TokenType is the token scheme, normally "bearer".
	TokenType string `json:"token_type"`
}

// Todo represents one user-owned work item.
type Todo struct {
	// ID is assigned by the store on creation and never changes.
	ID int `json:"id"`
	// Title is the required short summary of the item.
	Title string `json:"title"`
	// Description holds optional free-form detail.
	Description string `json:"description"`
	// IsCompleted marks the item as done.
	IsCompleted bool `json:"is_completed"`
	// CreatedAt is set by the store at insert time and never changes.
	CreatedAt time.Time `json:"created_at"`
	// UserID is the owning identity. It is set at creation and never changes.
	UserID string `json:"user_id"`
}
