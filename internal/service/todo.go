package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/imalykh/todolist/internal/models"
)

// TodoRepository defines the persistence operations needed by the TodoService.
type TodoRepository interface {
	// GetAllByUser retrieves all todos owned by the given user.
	GetAllByUser(ctx context.Context, userID string) ([]models.Todo, error)
	// GetByID fetches a todo by id alone, returning (nil, nil) when absent.
	GetByID(ctx context.Context, id int) (*models.Todo, error)
	// Create inserts a todo and returns it with id and created_at assigned.
	Create(ctx context.Context, todo models.Todo) (*models.Todo, error)
	// Update replaces the mutable fields of the todo with the given id.
	Update(ctx context.Context, id int, todo models.Todo) error
	// Delete removes the todo with the given id.
	Delete(ctx context.Context, id int) error
}

// TodoService implements todo CRUD with centralized ownership enforcement:
// every operation that targets an existing todo resolves it through
// resolveOwned, so the owner check lives in exactly one place.
type TodoService struct {
	repo TodoRepository
}

// NewTodoService constructs a TodoService with the provided repository.
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// absentPolicy selects what resolveOwned does when the target id does not exist.
type absentPolicy int

const (
	// failNotFound makes an absent record an ErrNotFound. Used by reads.
	failNotFound absentPolicy = iota
	// silentSuccess makes an absent record a no-op. Used by update and delete,
	// which treat "already gone" as success.
	silentSuccess
)

// resolveOwned loads the todo with the given id and enforces the ownership
// invariant. Existence is checked before ownership: an absent record follows
// onAbsent, a record owned by someone else is always ErrNotOwner.
// With silentSuccess an absent record yields (nil, nil).
func (s *TodoService) resolveOwned(ctx context.Context, id int, userID string, onAbsent absentPolicy) (*models.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreBackend, err)
	}
	if todo == nil {
		if onAbsent == failNotFound {
			return nil, ErrNotFound
		}
		return nil, nil
	}
	if todo.UserID != userID {
		return nil, ErrNotOwner
	}
	return todo, nil
}

// GetAllByUser returns every todo owned by userID. No todos is an empty
// slice, not an error.
func (s *TodoService) GetAllByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	todos, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreBackend, err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// GetByID returns the todo with the given id if it belongs to userID.
// An absent id is ErrNotFound, a foreign owner is ErrNotOwner.
func (s *TodoService) GetByID(ctx context.Context, id int, userID string) (*models.Todo, error) {
	return s.resolveOwned(ctx, id, userID, failNotFound)
}

// Create inserts a new todo owned by userID. The owner is always taken from
// userID, never from caller-supplied fields. A blank title is rejected before
// any store access.
func (s *TodoService) Create(ctx context.Context, title, description string, isCompleted bool, userID string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	created, err := s.repo.Create(ctx, models.Todo{
		Title:       title,
		Description: description,
		IsCompleted: isCompleted,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreBackend, err)
	}
	return created, nil
}

// Update replaces title, description and completion of the todo with the
// given id, leaving id, creation timestamp and owner untouched. Updating an
// id that no longer exists succeeds without effect.
func (s *TodoService) Update(ctx context.Context, id int, title, description string, isCompleted bool, userID string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}

	todo, err := s.resolveOwned(ctx, id, userID, silentSuccess)
	if err != nil {
		return err
	}
	if todo == nil {
		return nil
	}

	err = s.repo.Update(ctx, id, models.Todo{
		Title:       title,
		Description: description,
		IsCompleted: isCompleted,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreBackend, err)
	}
	return nil
}

// Delete removes the todo with the given id. Deleting an id that no longer
// exists succeeds without effect.
func (s *TodoService) Delete(ctx context.Context, id int, userID string) error {
	todo, err := s.resolveOwned(ctx, id, userID, silentSuccess)
	if err != nil {
		return err
	}
	if todo == nil {
		return nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreBackend, err)
	}
	return nil
}
