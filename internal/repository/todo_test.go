package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/imalykh/todolist/internal/models"
)

func newTodo(title, description string, completed bool, userID string) models.Todo {
	return models.Todo{Title: title, Description: description, IsCompleted: completed, UserID: userID}
}

func setupTodoMock(t *testing.T) (*PostgresTodoRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresTodoRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

var todoColumns = []string{"id", "title", "description", "is_completed", "created_at", "user_id"}

func TestGetAllByUser(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, is_completed, created_at, user_id`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(1, "Buy milk", "", false, created, "u1").
			AddRow(3, "Buy bread", "rye", true, created, "u1"))

	todos, err := repo.GetAllByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("got %d todos; want 2", len(todos))
	}
	if todos[0].ID != 1 || todos[0].Title != "Buy milk" || todos[0].UserID != "u1" {
		t.Errorf("first todo = %+v", todos[0])
	}
	if todos[1].ID != 3 || !todos[1].IsCompleted || todos[1].Description != "rye" {
		t.Errorf("second todo = %+v", todos[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetAllByUser_Empty(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE user_id = $1 ORDER BY id`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todos, err := repo.GetAllByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("got %d todos; want 0", len(todos))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetAllByUser_QueryError(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE user_id = $1`)).
		WithArgs("u1").
		WillReturnError(errors.New("query failed"))

	if _, err := repo.GetAllByUser(context.Background(), "u1"); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(7, "Buy milk", "2 liters", false, created, "u1"))

	todo, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo == nil {
		t.Fatal("expected a todo, got nil")
	}
	if todo.ID != 7 || todo.Title != "Buy milk" || todo.UserID != "u1" || !todo.CreatedAt.Equal(created) {
		t.Errorf("todo = %+v", todo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByID_Absent(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todo, err := repo.GetByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo != nil {
		t.Errorf("expected nil for an absent id, got %+v", todo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByID_QueryError(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1`)).
		WithArgs(7).
		WillReturnError(errors.New("query failed"))

	if _, err := repo.GetByID(context.Background(), 7); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos (title, description, is_completed, user_id)`)).
		WithArgs("Buy milk", "2 liters", false, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

	todo, err := repo.Create(context.Background(), newTodo("Buy milk", "2 liters", false, "u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.ID != 42 || !todo.CreatedAt.Equal(created) {
		t.Errorf("store-assigned fields = id=%d created=%v; want 42, %v", todo.ID, todo.CreatedAt, created)
	}
	if todo.Title != "Buy milk" || todo.UserID != "u1" {
		t.Errorf("todo = %+v", todo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreate_InsertError(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos`)).
		WithArgs("Buy milk", "", false, "u1").
		WillReturnError(errors.New("insert failed"))

	if _, err := repo.Create(context.Background(), newTodo("Buy milk", "", false, "u1")); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE todos SET title = $1, description = $2, is_completed = $3 WHERE id = $4`)).
		WithArgs("Buy bread", "rye", true, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, newTodo("Buy bread", "rye", true, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdate_ExecError(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE todos SET`)).
		WithArgs("Buy bread", "", false, 7).
		WillReturnError(errors.New("exec failed"))

	if err := repo.Update(context.Background(), 7, newTodo("Buy bread", "", false, "")); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete_ExecError(t *testing.T) {
	repo, mock, cleanup := setupTodoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1`)).
		WithArgs(7).
		WillReturnError(errors.New("exec failed"))

	if err := repo.Delete(context.Background(), 7); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
