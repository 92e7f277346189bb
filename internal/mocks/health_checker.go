package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/store"
)

// MockHealthChecker implements store.HealthChecker for testing.
type MockHealthChecker struct {
	CheckFn func(ctx context.Context) error
	Err     error

	mu    sync.Mutex
	calls int
}

var _ store.HealthChecker = (*MockHealthChecker)(nil)

// Check implements the HealthChecker interface
func (m *MockHealthChecker) Check(ctx context.Context) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return m.Err
}

// CallCount returns how many times Check was invoked.
func (m *MockHealthChecker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
