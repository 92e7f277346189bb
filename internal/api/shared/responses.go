package shared

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/redact"
)

// RenderErrorAndLog renders a failure envelope carrying only userMessage and
// logs the redacted detail of err.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 429 Too Many Requests: WARN (operational concern)
// - everything else: DEBUG
func RenderErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if status == http.StatusTooManyRequests {
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	Render(w, r, Failure(status, userMessage))
}
