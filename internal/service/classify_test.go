package service

import (
	"errors"
	"testing"
)

func TestClassifySignupFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"gotrue phrasing", errors.New("User already registered"), ErrAlreadyRegistered},
		{"lowercase phrasing", errors.New("user already registered"), ErrAlreadyRegistered},
		{"wrapped in status text", errors.New("auth backend returned 422: User already registered"), ErrAlreadyRegistered},
		{"postgres duplicate key", errors.New(`duplicate key value violates unique constraint "users_email_key"`), ErrAlreadyRegistered},
		{"network failure", errors.New("connection refused"), ErrAuthBackend},
		{"rate limit", errors.New("email rate limit exceeded"), ErrAuthBackend},
		{"unrelated 500", errors.New("auth backend returned 500: internal error"), ErrAuthBackend},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifySignupFailure(tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("classifySignupFailure(%q) = %v; want %v", tc.err, got, tc.want)
			}
		})
	}
}
