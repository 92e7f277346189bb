package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCloser struct{ closed int }

func (s *stubCloser) Close() error {
	s.closed++
	return nil
}

func testApplication(t *testing.T, dbErr error, rps float64) (*application, *mocks.MockTaskStore) {
	t.Helper()

	task, err := domain.NewTask(1, "write report", nil, nil, domain.Incomplete)
	require.NoError(t, err)
	ts := mocks.NewMockTaskStore(task)

	return &application{
		config: &config.Config{Server: config.ServerConfig{
			Port:           0,
			LogLevel:       "error",
			RateLimitRPS:   rps,
			RateLimitBurst: 2,
		}},
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		db:        &mocks.MockHealthChecker{Err: dbErr},
		closer:    &stubCloser{},
		taskStore: ts,
	}, ts
}

type envelope struct {
	StatusCode int                    `json:"statusCode"`
	Success    bool                   `json:"success"`
	Messages   []string               `json:"messages"`
	Data       map[string]interface{} `json:"data"`
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	var body envelope
	if w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestRouter(t *testing.T) {
	app, _ := testApplication(t, nil, 0)
	router := app.setupRouter()

	t.Run("tasks collection", func(t *testing.T) {
		w, body := do(t, router, http.MethodGet, "/tasks")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body.Data["rows_returned"])
		assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
	})

	t.Run("path alias", func(t *testing.T) {
		w, body := do(t, router, http.MethodGet, "/tasks/1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body.Data["rows_returned"])
	})

	t.Run("health", func(t *testing.T) {
		w, _ := do(t, router, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		w, body := do(t, router, http.MethodGet, "/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, []string{"Endpoint not found"}, body.Messages)
	})

	t.Run("health wrong method", func(t *testing.T) {
		w, body := do(t, router, http.MethodPost, "/health")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, []string{"Request method not allowed"}, body.Messages)
	})
}

func TestRouterDatabaseDown(t *testing.T) {
	app, ts := testApplication(t, store.ErrConnection, 0)
	router := app.setupRouter()

	for _, target := range []string{"/tasks", "/tasks?taskid=abc", "/tasks/complete", "/tasks?bogus=1"} {
		w, body := do(t, router, http.MethodGet, target)
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
		assert.Equal(t, []string{"Database connection error"}, body.Messages, target)
	}
	assert.Equal(t, 0, ts.CallCount())

	w, _ := do(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code, "health does not depend on the database")
}

func TestRouterRateLimit(t *testing.T) {
	app, _ := testApplication(t, nil, 0.001)
	router := app.setupRouter()

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w, _ := do(t, router, http.MethodGet, "/tasks")
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
