// Package gotrue implements a minimal REST client for a GoTrue-compatible
// auth backend (Supabase-style). It covers only the three calls the service
// layer needs: sign-up, password sign-in, and sign-out.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imalykh/todolist/internal/models"
)

// APIError carries a non-2xx response from the auth backend. The raw message
// text is preserved so callers can classify backend-specific phrasing.
type APIError struct {
	// Status is the HTTP status code returned by the backend.
	Status int
	// Message is the error text extracted from the response body.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth backend returned %d: %s", e.Status, e.Message)
}

// Client talks to one GoTrue endpoint using a fixed project API key.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New constructs a Client for the given endpoint and project API key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SignUp registers a new account and returns the session issued for it.
// data carries optional user metadata such as display name and phone.
func (c *Client) SignUp(ctx context.Context, email, password string, data map[string]any) (*models.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(data) > 0 {
		body["data"] = data
	}
	var session models.Session
	if err := c.do(ctx, "/signup", "", body, &session); err != nil {
		return nil, err
	}
	// With email confirmation enabled the backend answers 2xx with a bare
	// user record and no tokens. That is not a usable session, so report
	// no session and let the caller decide what it means.
	if session.AccessToken == "" {
		return nil, nil
	}
	return &session, nil
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var session models.Session
	if err := c.do(ctx, "/token?grant_type=password", "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut invalidates the session behind the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, "/logout", accessToken, nil, nil)
}

// do posts body as JSON to path and decodes a 2xx response into out.
// A non-2xx response is returned as *APIError.
func (c *Client) do(ctx context.Context, path, bearer string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the error text from a GoTrue failure body.
// GoTrue is inconsistent across endpoints: "msg", "error_description" and
// "error" all occur in the wild.
func readErrorMessage(r io.Reader) string {
	var body struct {
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		ErrorField       string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return "unreadable error body"
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, msg := range []string{body.Msg, body.ErrorDescription, body.ErrorField} {
		if msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(raw))
}
