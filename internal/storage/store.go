// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// UserStore persists registered accounts. Registered users are the household members.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// ListUsers returns users in registration order.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// TaskStore persists recurring tasks (cleaning rooms and plants).
type TaskStore interface {
	// CreateTask persists a new task. ID and timestamps are populated by the store.
	CreateTask(ctx context.Context, task *models.RecurringTask) error
	GetTask(ctx context.Context, id string) (*models.RecurringTask, error)
	// ListTasks returns tasks of the given kind, or all tasks when kind is empty.
	ListTasks(ctx context.Context, kind models.TaskKind) ([]*models.RecurringTask, error)
	// UpdateTask replaces every field of an existing task.
	UpdateTask(ctx context.Context, task *models.RecurringTask) error
	DeleteTask(ctx context.Context, id string) error
}

// TransactionFilter narrows a ledger listing. Zero values match everything.
type TransactionFilter struct {
	// Query matches category or note, case-insensitively.
	Query string
	// Category must match exactly.
	Category string
}

// TransactionStore persists the household ledger, settlements included.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	// ListTransactions returns the newest transactions first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}

// ShoppingStore persists the shared shopping list.
type ShoppingStore interface {
	CreateItem(ctx context.Context, item *models.ShoppingItem) error
	GetItem(ctx context.Context, id string) (*models.ShoppingItem, error)
	ListItems(ctx context.Context) ([]*models.ShoppingItem, error)
	UpdateItem(ctx context.Context, item *models.ShoppingItem) error
	DeleteItem(ctx context.Context, id string) error
}

// Store is the full storage backend.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	TaskStore
	TransactionStore
	ShoppingStore

	// Close releases any resources held by the store.
	Close() error
}
