// Package repository provides the PostgreSQL persistence layer for todos.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/imalykh/todolist/internal/models"
)

// PostgresTodoRepository implements todo persistence against a PostgreSQL database.
type PostgresTodoRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTodoRepository creates a new PostgresTodoRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresTodoRepository(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{DB: db}
}

// GetAllByUser fetches every todo owned by the given user, ordered by id.
func (r *PostgresTodoRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, is_completed, created_at, user_id
		  FROM todos WHERE user_id = $1 ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("GetAllByUser: %w", err)
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAllByUser rows: %w", err)
	}
	return todos, nil
}

// GetByID looks a todo up by id alone, regardless of owner.
// It returns (nil, nil) when no such row exists; ownership is the
// service layer's concern.
func (r *PostgresTodoRepository) GetByID(ctx context.Context, id int) (*models.Todo, error) {
	var t models.Todo
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, description, is_completed, created_at, user_id
		  FROM todos WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UserID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &t, nil
}

// Create inserts a new todo and returns it with the store-assigned id and
// creation timestamp filled in.
func (r *PostgresTodoRepository) Create(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO todos (title, description, is_completed, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, todo.Title, todo.Description, todo.IsCompleted, todo.UserID).Scan(&todo.ID, &todo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &todo, nil
}

// Update replaces the mutable fields of the todo with the given id.
// id, created_at and user_id are never touched.
func (r *PostgresTodoRepository) Update(ctx context.Context, id int, todo models.Todo) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE todos SET title = $1, description = $2, is_completed = $3 WHERE id = $4
	`, todo.Title, todo.Description, todo.IsCompleted, id)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// Delete removes the todo with the given id.
func (r *PostgresTodoRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
