package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		requests int
		allowed  int
	}{
		{name: "burst then reject", rps: 0.001, burst: 3, requests: 5, allowed: 3},
		{name: "zero burst treated as one", rps: 0.001, burst: 0, requests: 3, allowed: 1},
		{name: "disabled", rps: 0, burst: 1, requests: 50, allowed: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RateLimit(tt.rps, tt.burst)(okHandler())

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))
				switch w.Code {
				case http.StatusOK:
					allowed++
				case http.StatusTooManyRequests:
					assert.Equal(t, "1", w.Header().Get("Retry-After"))
					assert.Contains(t, w.Body.String(), "Too many requests")
				default:
					t.Fatalf("unexpected status %d", w.Code)
				}
			}

			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
