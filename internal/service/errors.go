package service

import "errors"

// Sentinel errors shared by the auth and todo services. Handlers match on
// these with errors.Is and translate them to response codes; adapter-specific
// detail stays wrapped behind them and never crosses the HTTP boundary.
var (
	// ErrValidation reports malformed input, rejected before any backend call.
	ErrValidation = errors.New("invalid input")
	// ErrUnauthenticated reports a request with no validated caller identity.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials reports a rejected sign-in. Wrong password and
	// unknown email both collapse into this one value to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotOwner reports an operation on a todo owned by another identity.
	ErrNotOwner = errors.New("todo owned by another user")
	// ErrNotFound reports a read of a todo that does not exist.
	ErrNotFound = errors.New("todo not found")
	// ErrAlreadyRegistered reports a sign-up for an email that already has an account.
	ErrAlreadyRegistered = errors.New("user already registered")
	// ErrAuthBackend reports any other failure of the auth backend.
	ErrAuthBackend = errors.New("auth backend failure")
	// ErrStoreBackend reports any failure of the record store.
	ErrStoreBackend = errors.New("store backend failure")
)
