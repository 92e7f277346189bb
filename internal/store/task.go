package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the persistence operations for tasks.
// Rows are created and updated outside this service; the store only
// reads and deletes.
type TaskStore interface {
	// GetByID retrieves a single task.
	// Returns ErrTaskNotFound if no row has the given id.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns every task ordered by id.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByCompletion returns every task with the given completion flag.
	ListByCompletion(ctx context.Context, completed domain.Completion) ([]*domain.Task, error)

	// Count returns the total number of tasks.
	Count(ctx context.Context) (int, error)

	// ListPage returns at most limit tasks ordered by id, skipping offset rows.
	ListPage(ctx context.Context, limit, offset int) ([]*domain.Task, error)

	// Delete removes a task.
	// Returns ErrTaskNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) error
}
