// Package middleware provides the HTTP middleware mounted in front of the
// tasks endpoint: trace IDs with request-scoped loggers, the per-request
// database availability gate and a global rate limiter.
package middleware
