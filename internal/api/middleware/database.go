package middleware

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/store"
)

// DatabaseUnavailableMessage is the only detail a client sees when the
// database cannot be reached.
const DatabaseUnavailableMessage = "Database connection error"

// RequireDatabase checks database connectivity before every request and
// answers 500 without calling next when the check fails. There is no retry.
func RequireDatabase(checker store.HealthChecker) func(http.Handler) http.Handler {
	if checker == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("checker cannot be nil for RequireDatabase")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := checker.Check(r.Context()); err != nil {
				shared.RenderErrorAndLog(w, r, http.StatusInternalServerError, DatabaseUnavailableMessage, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
