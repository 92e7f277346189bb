// Package shared holds the pieces of the HTTP layer used by both handlers
// and middleware: the response envelope, request validation and
// request-scoped context values.
package shared
