// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields for per-test behavior and falls back to an
// in-memory default when a field is nil:
//
//	taskStore := mocks.NewMockTaskStore(task1, task2)
//	taskStore.DeleteFn = func(ctx context.Context, id int64) error {
//	    return store.ErrConnection
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked.
package mocks
