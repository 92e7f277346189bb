package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

const selectTaskColumns = `SELECT id, title, description, deadline, completed FROM tbltasks`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend. Queries go to the
// read handle and deletes to the write handle.
type PostgresTaskStore struct {
	read   store.DBTX
	write  store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(read, write store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if read == nil || write == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		read:   read,
		write:  write,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row and turns it into a validated domain.Task.
// Scan failures are returned as-is; invalid rows yield a *domain.TaskError.
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		id          int64
		title       string
		description sql.NullString
		deadline    sql.NullTime
		completed   string
	)

	if err := row.Scan(&id, &title, &description, &deadline, &completed); err != nil {
		return nil, err
	}

	var descPtr *string
	if description.Valid {
		descPtr = &description.String
	}

	var deadlinePtr *time.Time
	if deadline.Valid {
		d := deadline.Time
		deadlinePtr = &d
	}

	task, err := domain.NewTask(id, title, descPtr, deadlinePtr, domain.Completion(completed))
	if err != nil {
		return nil, err
	}
	return task, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	row := s.read.QueryRowContext(ctx, selectTaskColumns+` WHERE id = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}

		var taskErr *domain.TaskError
		if errors.As(err, &taskErr) {
			log.Warn("stored task failed validation",
				slog.Int64("task_id", id),
				slog.String("field", taskErr.Field))
			return nil, err
		}

		log.Error("failed to get task",
			slog.Int64("task_id", id),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "get", fmt.Sprintf("id %d", id), MapError(err))
	}

	return task, nil
}

// List implements store.TaskStore.List.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return s.query(ctx, "list", selectTaskColumns+` ORDER BY id`)
}

// ListByCompletion implements store.TaskStore.ListByCompletion.
func (s *PostgresTaskStore) ListByCompletion(
	ctx context.Context,
	completed domain.Completion,
) ([]*domain.Task, error) {
	return s.query(ctx, "list_by_completion",
		selectTaskColumns+` WHERE completed = $1 ORDER BY id`, string(completed))
}

// ListPage implements store.TaskStore.ListPage.
func (s *PostgresTaskStore) ListPage(ctx context.Context, limit, offset int) ([]*domain.Task, error) {
	return s.query(ctx, "list_page",
		selectTaskColumns+` ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

// Count implements store.TaskStore.Count.
func (s *PostgresTaskStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.read.QueryRowContext(ctx, `SELECT COUNT(id) FROM tbltasks`).Scan(&count)
	if err != nil {
		log.Error("failed to count tasks", slog.String("error", redact.Error(err)))
		return 0, store.NewStoreError("task", "count", "query failed", MapError(err))
	}

	return count, nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if no row was deleted.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.write.ExecContext(ctx, `DELETE FROM tbltasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("task", "delete", fmt.Sprintf("id %d", id), MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("no task deleted", slog.Int64("task_id", id))
			return err
		}
		log.Error("failed to read delete result",
			slog.Int64("task_id", id),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("task", "delete", fmt.Sprintf("id %d", id), err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// query runs a multi-row task query against the read handle.
// The result is never nil, so an empty match encodes as [] rather than null.
func (s *PostgresTaskStore) query(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.read.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", operation, "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			var taskErr *domain.TaskError
			if errors.As(err, &taskErr) {
				log.Warn("stored task failed validation",
					slog.String("operation", operation),
					slog.String("field", taskErr.Field))
				return nil, err
			}
			log.Error("failed to scan task row",
				slog.String("operation", operation),
				slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("task", operation, "scan failed", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows",
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", operation, "row iteration failed", MapError(err))
	}

	log.Debug("tasks retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(tasks)))
	return tasks, nil
}
