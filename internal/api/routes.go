package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the tasks endpoint and its path aliases on r.
//
//	/tasks/{taskid}      -> /tasks?taskid={taskid}
//	/tasks/complete      -> /tasks?completed=Y
//	/tasks/incomplete    -> /tasks?completed=N
//	/tasks/page/{page}   -> /tasks?page={page}
//
// Aliases replace the query string of the request.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.HandleFunc("/tasks", h.ServeTasks)
	r.HandleFunc("/tasks/complete", h.alias(paramCompleted, fixed("Y")))
	r.HandleFunc("/tasks/incomplete", h.alias(paramCompleted, fixed("N")))
	r.HandleFunc("/tasks/page/{page}", h.alias(paramPage, urlParam("page")))
	r.HandleFunc("/tasks/{taskid}", h.alias(paramTaskID, urlParam("taskid")))
}

func fixed(value string) func(*http.Request) string {
	return func(*http.Request) string { return value }
}

func urlParam(name string) func(*http.Request) string {
	return func(r *http.Request) string { return chi.URLParam(r, name) }
}

// alias rewrites the request into the single-parameter query form and serves it.
func (h *TaskHandler) alias(param string, value func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewritten := r.Clone(r.Context())
		rewritten.URL.RawQuery = url.Values{param: []string{value(r)}}.Encode()
		h.ServeTasks(w, rewritten)
	}
}
