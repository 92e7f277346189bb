package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Cache-Control values sent by Render.
const (
	CacheControlCacheable = "max-age=60"
	CacheControlNoStore   = "no-cache, no-store"
)

// Response is the uniform envelope returned by every endpoint.
// It is an immutable value: the With* methods return modified copies.
type Response struct {
	statusCode int
	success    bool
	messages   []string
	cacheable  bool
	data       map[string]interface{}
}

// envelopeBody is the wire shape of a Response.
type envelopeBody struct {
	StatusCode int                    `json:"statusCode"`
	Success    bool                   `json:"success"`
	Messages   []string               `json:"messages"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// Success starts a successful response with the given status code.
func Success(status int) Response {
	return Response{statusCode: status, success: true}
}

// Failure starts an unsuccessful response with the given status code and messages.
func Failure(status int, messages ...string) Response {
	return Response{statusCode: status, success: false}.WithMessage(messages...)
}

// WithMessage appends messages, preserving their order.
func (r Response) WithMessage(messages ...string) Response {
	if len(messages) == 0 {
		return r
	}
	merged := make([]string, 0, len(r.messages)+len(messages))
	merged = append(merged, r.messages...)
	merged = append(merged, messages...)
	r.messages = merged
	return r
}

// WithData sets the payload.
func (r Response) WithData(data map[string]interface{}) Response {
	r.data = data
	return r
}

// Cacheable marks the response as safe for clients to cache briefly.
func (r Response) Cacheable() Response {
	r.cacheable = true
	return r
}

// StatusCode returns the HTTP status of the response.
func (r Response) StatusCode() int { return r.statusCode }

// IsSuccess reports the success flag.
func (r Response) IsSuccess() bool { return r.success }

// Messages returns a copy of the messages.
func (r Response) Messages() []string {
	return append([]string(nil), r.messages...)
}

// IsCacheable reports whether Render will send a caching header.
func (r Response) IsCacheable() bool { return r.cacheable }

// Data returns the payload, or nil when none was set.
func (r Response) Data() map[string]interface{} { return r.data }

// Body returns the value serialized by Render.
func (r Response) Body() interface{} {
	messages := r.messages
	if messages == nil {
		messages = []string{}
	}
	return envelopeBody{
		StatusCode: r.statusCode,
		Success:    r.success,
		Messages:   messages,
		Data:       r.data,
	}
}

// Render writes resp to w. It is the only place a response body is written,
// and it must be called exactly once per request.
func Render(w http.ResponseWriter, r *http.Request, resp Response) {
	if resp.cacheable {
		w.Header().Set("Cache-Control", CacheControlCacheable)
	} else {
		w.Header().Set("Cache-Control", CacheControlNoStore)
	}

	if resp.statusCode == 0 {
		slog.Error("rendering response without status code",
			"path", r.URL.Path,
			"method", r.Method)
		resp = Failure(http.StatusInternalServerError, "Response creation error")
	}

	RespondWithJSON(w, r, resp.statusCode, resp.Body())
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
