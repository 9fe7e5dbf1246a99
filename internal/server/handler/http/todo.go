package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/imalykh/todolist/internal/middleware"
	"github.com/imalykh/todolist/internal/models"
	"github.com/imalykh/todolist/internal/service"
	"go.uber.org/zap"
)

// TodoService defines the todo operations required by the HTTP handlers.
// The acting identity is always passed explicitly; the service enforces
// ownership on every call.
type TodoService interface {
	GetAllByUser(ctx context.Context, userID string) ([]models.Todo, error)
	GetByID(ctx context.Context, id int, userID string) (*models.Todo, error)
	Create(ctx context.Context, title, description string, isCompleted bool, userID string) (*models.Todo, error)
	Update(ctx context.Context, id int, title, description string, isCompleted bool, userID string) error
	Delete(ctx context.Context, id int, userID string) error
}

// TodoHandler handles HTTP requests for todo CRUD.
type TodoHandler struct {
	// TodoService performs the underlying todo operations.
	TodoService TodoService
	// Log records backend failures server-side; responses stay generic.
	Log *zap.Logger
}

// TodoRequest represents the JSON payload for creating or updating a todo.
// The owner is never part of the payload.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// GetAll handles GET /api/todos, returning every todo owned by the caller.
func (h *TodoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		unauthorized(w)
		return
	}

	todos, err := h.TodoService.GetAllByUser(r.Context(), userID)
	if err != nil {
		h.Log.Error("failed to list todos", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

// GetByID handles GET /api/todos/{id}. A todo owned by another user yields
// the same 401 as an unauthenticated request, so existence of foreign todos
// is never confirmed.
func (h *TodoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		unauthorized(w)
		return
	}
	id, err := todoID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	todo, err := h.TodoService.GetByID(r.Context(), id, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "todo not found", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrNotOwner):
		unauthorized(w)
		return
	default:
		h.Log.Error("failed to get todo", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

// Create handles POST /api/todos. On success it responds 201 with the created
// todo and a Location header pointing at it.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		unauthorized(w)
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	todo, err := h.TodoService.Create(r.Context(), req.Title, req.Description, req.IsCompleted, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	default:
		h.Log.Error("failed to create todo", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/todos/%d", todo.ID))
	writeJSON(w, http.StatusCreated, todo)
}

// Update handles PUT /api/todos/{id}, replacing title, description and
// completion. Updating an id that no longer exists succeeds with 204.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		unauthorized(w)
		return
	}
	id, err := todoID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	err = h.TodoService.Update(r.Context(), id, req.Title, req.Description, req.IsCompleted, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrNotOwner):
		unauthorized(w)
		return
	default:
		h.Log.Error("failed to update todo", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/todos/{id}. Deleting an id that no longer
// exists succeeds with 204.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		unauthorized(w)
		return
	}
	id, err := todoID(r)
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return
	}

	err = h.TodoService.Delete(r.Context(), id, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotOwner):
		unauthorized(w)
		return
	default:
		h.Log.Error("failed to delete todo", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// todoID parses the {id} route parameter.
func todoID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// unauthorized writes the uniform denial used for a missing identity and for
// ownership violations alike, so the two cases are indistinguishable to the
// caller and foreign todos are never confirmed to exist.
func unauthorized(w http.ResponseWriter) {
	http.Error(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
}
