package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Function fields for customizable behavior
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn             func(ctx context.Context) ([]*domain.Task, error)
	ListByCompletionFn func(ctx context.Context, c domain.Completion) ([]*domain.Task, error)
	CountFn            func(ctx context.Context) (int, error)
	ListPageFn         func(ctx context.Context, limit, offset int) ([]*domain.Task, error)
	DeleteFn           func(ctx context.Context, id int64) error

	// Data for default implementation
	Tasks map[int64]*domain.Task
	// Err, when set, is returned by every default implementation.
	Err error

	mu    sync.Mutex
	calls int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store seeded with tasks.
func NewMockTaskStore(tasks ...*domain.Task) *MockTaskStore {
	m := &MockTaskStore{Tasks: make(map[int64]*domain.Task)}
	for _, t := range tasks {
		m.Tasks[t.ID] = t
	}
	return m
}

// CallCount returns how many store operations have been invoked.
func (m *MockTaskStore) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// begin counts the call and returns Err. The lock is released before any
// override runs, so overrides may call back into the mock.
func (m *MockTaskStore) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.Err
}

// sorted returns the matching tasks ordered by id. Callers hold mu.
func (m *MockTaskStore) sorted(filter func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter == nil || filter(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	err := m.begin()
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t, nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	err := m.begin()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(nil), nil
}

// ListByCompletion implements the TaskStore interface
func (m *MockTaskStore) ListByCompletion(ctx context.Context, c domain.Completion) ([]*domain.Task, error) {
	err := m.begin()
	if m.ListByCompletionFn != nil {
		return m.ListByCompletionFn(ctx, c)
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(t *domain.Task) bool { return t.Completed == c }), nil
}

// Count implements the TaskStore interface
func (m *MockTaskStore) Count(ctx context.Context) (int, error) {
	err := m.begin()
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tasks), nil
}

// ListPage implements the TaskStore interface
func (m *MockTaskStore) ListPage(ctx context.Context, limit, offset int) ([]*domain.Task, error) {
	err := m.begin()
	if m.ListPageFn != nil {
		return m.ListPageFn(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.sorted(nil)
	if offset >= len(all) {
		return []*domain.Task{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	err := m.begin()
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}
