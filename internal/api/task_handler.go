package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskHandler dispatches requests on the tasks endpoint.
type TaskHandler struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		store:  taskStore,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// ServeTasks handles every method on /tasks. The query shape selects the
// operation; the result is rendered exactly once.
func (h *TaskHandler) ServeTasks(w http.ResponseWriter, r *http.Request) {
	shared.Render(w, r, h.dispatch(r))
}

// dispatch maps (query shape, method) to an operation and returns its result.
func (h *TaskHandler) dispatch(r *http.Request) shared.Response {
	q := parseTaskQuery(r.URL.Query())

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("dispatching tasks request",
		slog.String("query_kind", q.kind.String()),
		slog.String("method", r.Method))

	switch q.kind {
	case queryByTaskID:
		return h.byTaskID(r, q.raw)
	case queryByCompleted:
		return h.byCompleted(r, q.raw)
	case queryByPage:
		return h.byPage(r, q.raw)
	case queryListAll:
		return h.listAll(r)
	default:
		return shared.Failure(http.StatusNotFound, msgEndpointNotFound)
	}
}

func (h *TaskHandler) byTaskID(r *http.Request, raw string) shared.Response {
	id, d := parseTaskID(raw)
	if d == digitsInvalid {
		return shared.Failure(http.StatusBadRequest, msgInvalidTaskID)
	}

	switch r.Method {
	case http.MethodGet:
		if d == digitsOutOfRange {
			return shared.Failure(http.StatusNotFound, msgTaskNotFound)
		}
		return h.getTask(r, id)
	case http.MethodDelete:
		if d == digitsOutOfRange {
			return shared.Failure(http.StatusNotFound, msgTaskNotFound)
		}
		return h.deleteTask(r, id)
	case http.MethodPatch:
		return shared.Failure(http.StatusNotImplemented, msgUpdateNotSupported)
	default:
		return shared.Failure(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (h *TaskHandler) byCompleted(r *http.Request, raw string) shared.Response {
	if !validCompleted(raw) {
		return shared.Failure(http.StatusBadRequest, msgInvalidCompleted)
	}

	if r.Method != http.MethodGet {
		return shared.Failure(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	tasks, err := h.store.ListByCompletion(r.Context(), domain.Completion(raw))
	if err != nil {
		return h.failure(r, err, "Failed to get tasks")
	}

	return taskList(tasks)
}

func (h *TaskHandler) byPage(r *http.Request, raw string) shared.Response {
	if r.Method != http.MethodGet {
		return shared.Failure(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}

	page, d := parsePage(raw)
	switch d {
	case digitsInvalid:
		return shared.Failure(http.StatusBadRequest, msgInvalidPage)
	case digitsOutOfRange:
		return shared.Failure(http.StatusNotFound, msgPageNotFound)
	}

	total, err := h.store.Count(r.Context())
	if err != nil {
		return h.failure(r, err, "Failed to get tasks")
	}

	pages := domain.PageCount(total, domain.TasksPerPage)
	if page < 1 || page > pages {
		return shared.Failure(http.StatusNotFound, msgPageNotFound)
	}

	tasks, err := h.store.ListPage(r.Context(), domain.TasksPerPage, domain.PageOffset(page, domain.TasksPerPage))
	if err != nil {
		return h.failure(r, err, "Failed to get tasks")
	}

	return shared.Success(http.StatusOK).
		Cacheable().
		WithData(map[string]interface{}{
			"rows_returned":     len(tasks),
			"total_rows":        total,
			"total_pages":       pages,
			"has_next_page":     page < pages,
			"has_previous_page": page > 1,
			"tasks":             taskMaps(tasks),
		})
}

func (h *TaskHandler) listAll(r *http.Request) shared.Response {
	switch r.Method {
	case http.MethodGet:
		tasks, err := h.store.List(r.Context())
		if err != nil {
			return h.failure(r, err, "Failed to get tasks")
		}
		return taskList(tasks)
	case http.MethodPost:
		return shared.Failure(http.StatusNotImplemented, msgCreateNotSupported)
	default:
		return shared.Failure(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (h *TaskHandler) getTask(r *http.Request, id int64) shared.Response {
	task, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		return h.failure(r, err, "Failed to get task")
	}

	return taskList([]*domain.Task{task})
}

func (h *TaskHandler) deleteTask(r *http.Request, id int64) shared.Response {
	if err := h.store.Delete(r.Context(), id); err != nil {
		return h.failure(r, err, "Failed to delete task")
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("task deleted", slog.Int64("task_id", id))
	return shared.Success(http.StatusOK).WithMessage(msgTaskDeleted)
}

// failure turns a store error into a failure response. Server-side failures
// are logged with their redacted detail; the client only sees a safe message.
func (h *TaskHandler) failure(r *http.Request, err error, fallback string) shared.Response {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err, fallback)

	if status >= http.StatusInternalServerError {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("task request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("user_message", message),
			slog.String("error", redact.Error(err)))
	}

	return shared.Failure(status, message)
}

// taskList is the common 200 payload for list-shaped results.
func taskList(tasks []*domain.Task) shared.Response {
	return shared.Success(http.StatusOK).
		Cacheable().
		WithData(map[string]interface{}{
			"rows_returned": len(tasks),
			"tasks":         taskMaps(tasks),
		})
}

func taskMaps(tasks []*domain.Task) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ToMap())
	}
	return out
}
